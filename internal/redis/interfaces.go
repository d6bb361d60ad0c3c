package redis

import (
	"context"

	"fundingtrail/internal/domain"
)

// ProgramCache defines the catalog caching operations used by services.
type ProgramCache interface {
	GetPrograms(ctx context.Context) ([]*domain.Program, error)
	SetPrograms(ctx context.Context, programs []*domain.Program) error
	InvalidatePrograms(ctx context.Context) error
}

// Ensure concrete types implement interfaces.
var _ ProgramCache = (*CacheStore)(nil)
