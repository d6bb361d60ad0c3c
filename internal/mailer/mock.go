package mailer

import (
	"context"
	"sync"
)

// Mock is an in-memory Service for tests. It records every sent email
// and can be primed to fail.
type Mock struct {
	mu   sync.Mutex
	sent []Email

	// SendError, when set, is returned by every Send call.
	SendError error
}

// NewMock creates a new mock mailer.
func NewMock() *Mock {
	return &Mock{}
}

// Send records the email, or fails with SendError.
func (m *Mock) Send(ctx context.Context, e Email) error {
	if m.SendError != nil {
		return m.SendError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, e)
	return nil
}

// Sent returns a copy of the recorded emails.
func (m *Mock) Sent() []Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Email, len(m.sent))
	copy(out, m.sent)
	return out
}
