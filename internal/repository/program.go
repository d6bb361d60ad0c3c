package repository

import (
	"context"

	"fundingtrail/internal/domain"
)

// ProgramFilter narrows a program listing. Zero values mean "no filter".
// Price matches on the integer value, mirroring the catalog's public
// price filter.
type ProgramFilter struct {
	Type  string
	Price int
}

// IsZero reports whether the filter selects everything.
func (f ProgramFilter) IsZero() bool {
	return f.Type == "" && f.Price == 0
}

// ProgramRepository defines the persistence operations for funding programs.
type ProgramRepository interface {
	// Create persists a new program.
	Create(ctx context.Context, program *domain.Program) error

	// GetByID retrieves a program by ID.
	GetByID(ctx context.Context, id string) (*domain.Program, error)

	// GetAll retrieves programs matching the filter.
	GetAll(ctx context.Context, filter ProgramFilter) ([]*domain.Program, error)

	// Update replaces the mutable fields of an existing program.
	Update(ctx context.Context, program *domain.Program) error

	// Delete removes a program by ID.
	Delete(ctx context.Context, id string) error
}
