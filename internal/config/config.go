package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Storage   StorageConfig   `yaml:"storage"`
	Venue     VenueConfig     `yaml:"venue"`
	Email     EmailConfig     `yaml:"email"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Retention RetentionConfig `yaml:"retention"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// StorageConfig selects the booking durability collaborator
type StorageConfig struct {
	Type string `yaml:"type"` // "postgres" or "memory"
}

// VenueConfig contains venue settings: the catalog file and bookable hours.
// Hours are integer hour-of-day; slots are one hour and the window is
// half-open, so open 8 / close 22 means the last slot starts at 21.
type VenueConfig struct {
	CatalogPath string `yaml:"catalog_path"`
	OpenHour    int    `yaml:"open_hour"`
	CloseHour   int    `yaml:"close_hour"`
}

// EmailConfig contains SendGrid notification settings. Empty api_key
// disables notifications.
type EmailConfig struct {
	APIKey         string `yaml:"api_key"`
	FromEmail      string `yaml:"from_email"`
	FromName       string `yaml:"from_name"`
	FrontDeskEmail string `yaml:"front_desk_email"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	PurgeCancelledBookings string `yaml:"purge_cancelled_bookings"`
	DailyBookingReport     string `yaml:"daily_booking_report"`
}

// RetentionConfig controls how long cancelled bookings are kept for audit
type RetentionConfig struct {
	CancelledBookingDays int `yaml:"cancelled_booking_days"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Storage
	if val := os.Getenv("STORAGE_TYPE"); val != "" {
		c.Storage.Type = val
	}

	// Email
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Email.APIKey = val
	}
	if val := os.Getenv("FRONT_DESK_EMAIL"); val != "" {
		c.Email.FrontDeskEmail = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks the configuration and applies defaults
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Storage defaults and validation
	if c.Storage.Type == "" {
		c.Storage.Type = "memory"
	}
	if c.Storage.Type != "memory" && c.Storage.Type != "postgres" {
		return fmt.Errorf("unsupported storage type: %s", c.Storage.Type)
	}
	if c.Storage.Type == "postgres" {
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
	}

	// Venue defaults and validation
	if c.Venue.OpenHour == 0 && c.Venue.CloseHour == 0 {
		c.Venue.OpenHour = 8
		c.Venue.CloseHour = 22
	}
	if c.Venue.OpenHour < 0 || c.Venue.CloseHour > 24 || c.Venue.OpenHour >= c.Venue.CloseHour {
		return fmt.Errorf("invalid venue hours: open %d, close %d", c.Venue.OpenHour, c.Venue.CloseHour)
	}

	// Email validation: notifications are optional, but with a key set the
	// addresses must be present
	if c.Email.APIKey != "" {
		if c.Email.FromEmail == "" {
			return fmt.Errorf("email from address is required when SendGrid is enabled")
		}
		if c.Email.FrontDeskEmail == "" {
			return fmt.Errorf("front desk email is required when SendGrid is enabled")
		}
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Scheduler defaults
	if c.Scheduler.PurgeCancelledBookings == "" {
		c.Scheduler.PurgeCancelledBookings = "0 0 3 * * *" // 3 AM UTC
	}
	if c.Scheduler.DailyBookingReport == "" {
		c.Scheduler.DailyBookingReport = "0 0 6 * * *" // 6 AM UTC
	}

	// Retention defaults
	if c.Retention.CancelledBookingDays == 0 {
		c.Retention.CancelledBookingDays = 90
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
