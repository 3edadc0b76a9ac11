package jobs

import (
	"courtmaster-backend/internal/config"
	"courtmaster-backend/internal/ledger"
	"courtmaster-backend/internal/logger"
	"courtmaster-backend/internal/repository"
	"courtmaster-backend/internal/service"
)

// JobRunner coordinates all scheduled maintenance jobs
type JobRunner struct {
	ledger *ledger.Ledger
	store  repository.BookingStore
	svc    service.BookingService
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(led *ledger.Ledger, store repository.BookingStore, svc service.BookingService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		ledger: led,
		store:  store,
		svc:    svc,
		config: cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.PurgeCancelledBookings()
	jr.DailyBookingReport()
}
