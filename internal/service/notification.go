package service

import (
	"context"
	"fmt"
	"log"

	"fundingtrail/internal/config"
	"fundingtrail/internal/mailer"
)

const (
	paymentSuccessSubject = "Payment Successful! ✔"

	paymentSuccessBody = `<div style="font-family:sans-serif">
<h2>Thank you for your purchase!</h2>
<p>Your payment has been received and your funding program checkout is being processed.</p>
<p>You will hear from us shortly.</p>
<p>&mdash; The FundingTrail Team</p>
</div>`
)

// NotificationService sends transactional email to customers.
type NotificationService struct {
	mail mailer.Service
	from string
	name string
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(mail mailer.Service, cfg config.SMTPConfig) *NotificationService {
	return &NotificationService{
		mail: mail,
		from: cfg.From,
		name: cfg.FromName,
	}
}

// NotifyPaymentSuccess sends the payment confirmation email. The subject
// and body are fixed; the mail is sent whenever the gateway call
// completed, whatever status the gateway reported.
func (s *NotificationService) NotifyPaymentSuccess(ctx context.Context, toAddress string) error {
	email := mailer.Email{
		FromName: s.name,
		From:     s.from,
		To:       []string{toAddress},
		Subject:  paymentSuccessSubject,
		HTMLBody: paymentSuccessBody,
	}

	if err := s.mail.Send(ctx, email); err != nil {
		return fmt.Errorf("payment confirmation to %s: %w", toAddress, err)
	}

	log.Printf("[NOTIFICATION] payment confirmation sent to %s", toAddress)
	return nil
}
