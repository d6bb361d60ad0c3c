package repository

import (
	"context"

	"fundingtrail/internal/domain"
)

// CheckoutRepository defines the persistence operations for checkout records.
type CheckoutRepository interface {
	// Insert persists a new checkout record.
	Insert(ctx context.Context, checkout *domain.Checkout) error

	// GetByID retrieves a checkout record by ID.
	GetByID(ctx context.Context, id string) (*domain.Checkout, error)
}
