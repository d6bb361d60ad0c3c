package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fundingtrail/internal/domain"
	"fundingtrail/internal/repository"
)

// ProgramRepository implements repository.ProgramRepository using PostgreSQL.
type ProgramRepository struct {
	db *sql.DB
}

// NewProgramRepository creates a new ProgramRepository.
func NewProgramRepository(db *sql.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

// Create persists a new program.
func (r *ProgramRepository) Create(ctx context.Context, program *domain.Program) error {
	query := `
		INSERT INTO programs (id, title, type, description, price)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		program.ID,
		program.Title,
		program.Type,
		program.Description,
		program.Price,
	)
	return err
}

// GetByID retrieves a program by ID.
func (r *ProgramRepository) GetByID(ctx context.Context, id string) (*domain.Program, error) {
	query := `
		SELECT id, title, type, description, price, created_at
		FROM programs WHERE id = $1
	`

	var program domain.Program
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&program.ID,
		&program.Title,
		&program.Type,
		&program.Description,
		&program.Price,
		&program.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &program, nil
}

// GetAll retrieves programs matching the filter.
func (r *ProgramRepository) GetAll(ctx context.Context, filter repository.ProgramFilter) ([]*domain.Program, error) {
	query := `
		SELECT id, title, type, description, price, created_at
		FROM programs
	`
	var (
		conditions string
		args       []any
	)
	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = fmt.Sprintf(" WHERE type = $%d", len(args))
	}
	if filter.Price != 0 {
		args = append(args, filter.Price)
		if conditions == "" {
			conditions = fmt.Sprintf(" WHERE price = $%d", len(args))
		} else {
			conditions += fmt.Sprintf(" AND price = $%d", len(args))
		}
	}
	query += conditions + " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []*domain.Program
	for rows.Next() {
		var program domain.Program
		if err := rows.Scan(
			&program.ID,
			&program.Title,
			&program.Type,
			&program.Description,
			&program.Price,
			&program.CreatedAt,
		); err != nil {
			return nil, err
		}
		programs = append(programs, &program)
	}
	return programs, rows.Err()
}

// Update replaces the mutable fields of an existing program.
func (r *ProgramRepository) Update(ctx context.Context, program *domain.Program) error {
	query := `
		UPDATE programs SET title = $1, type = $2, description = $3, price = $4
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		program.Title,
		program.Type,
		program.Description,
		program.Price,
		program.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a program by ID.
func (r *ProgramRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
