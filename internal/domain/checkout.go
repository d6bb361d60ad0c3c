package domain

import "time"

// Checkout is the durable record of one payment attempt. It is written
// exactly once, after the gateway call completes, and never updated.
type Checkout struct {
	ID            string
	FirstName     string
	Phone         string
	Email         string
	Country       string
	TotalPrice    float64
	PaymentStatus string
	TransactionID string
	CreatedAt     time.Time
}
