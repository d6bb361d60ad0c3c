package mailer

import "context"

// Service sends transactional email.
type Service interface {
	Send(ctx context.Context, e Email) error
}

// Email is one outbound message.
type Email struct {
	FromName string
	From     string
	To       []string
	Subject  string
	HTMLBody string
}
