package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fundingtrail/internal/domain"
	"fundingtrail/internal/repository"
)

// CheckoutRepository implements repository.CheckoutRepository using PostgreSQL.
type CheckoutRepository struct {
	q Querier
}

// NewCheckoutRepository creates a new CheckoutRepository.
func NewCheckoutRepository(db *sql.DB) *CheckoutRepository {
	return &CheckoutRepository{q: db}
}

// Insert persists a new checkout record.
func (r *CheckoutRepository) Insert(ctx context.Context, checkout *domain.Checkout) error {
	query := `
		INSERT INTO checkouts (id, first_name, phone, email, country, total_price, payment_status, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.q.ExecContext(ctx, query,
		checkout.ID,
		checkout.FirstName,
		checkout.Phone,
		checkout.Email,
		checkout.Country,
		checkout.TotalPrice,
		checkout.PaymentStatus,
		checkout.TransactionID,
	)
	return err
}

// GetByID retrieves a checkout record by ID.
func (r *CheckoutRepository) GetByID(ctx context.Context, id string) (*domain.Checkout, error) {
	query := `
		SELECT id, first_name, phone, email, country, total_price, payment_status, transaction_id, created_at
		FROM checkouts WHERE id = $1
	`

	var checkout domain.Checkout
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&checkout.ID,
		&checkout.FirstName,
		&checkout.Phone,
		&checkout.Email,
		&checkout.Country,
		&checkout.TotalPrice,
		&checkout.PaymentStatus,
		&checkout.TransactionID,
		&checkout.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &checkout, nil
}
