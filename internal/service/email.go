package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"courtmaster-backend/internal/domain"
)

// emailService notifies the venue front desk about booking lifecycle events
// via SendGrid. The recipient is a single configured address; per-user email
// is out of scope.
type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	frontDesk string
}

func NewEmailService(apiKey, fromEmail, fromName, frontDesk string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		frontDesk: frontDesk,
	}
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, booking *domain.Booking, courtName string) error {
	subject := fmt.Sprintf("New booking %s on %s", booking.ID, booking.Date)
	body := fmt.Sprintf(
		"%s booked %s on %s from %d:00 to %d:00.\nTotal charged: $%.2f (frozen at booking time).",
		booking.UserName, courtName, booking.Date, booking.StartTime, booking.EndTime, booking.Pricing.Total,
	)
	return s.send(subject, body)
}

func (s *emailService) SendBookingCancellation(ctx context.Context, booking *domain.Booking, courtName string) error {
	subject := fmt.Sprintf("Booking %s cancelled", booking.ID)
	body := fmt.Sprintf(
		"The booking by %s for %s on %s from %d:00 to %d:00 was cancelled.\nThe slot and any reserved equipment are available again.",
		booking.UserName, courtName, booking.Date, booking.StartTime, booking.EndTime,
	)
	return s.send(subject, body)
}

func (s *emailService) send(subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("Front Desk", s.frontDesk)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
