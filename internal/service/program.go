package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"fundingtrail/internal/domain"
	"fundingtrail/internal/redis"
	"fundingtrail/internal/repository"
)

// ProgramService handles catalog operations. The unfiltered listing is
// served from a short-TTL Redis cache; every mutation invalidates it.
type ProgramService struct {
	programs repository.ProgramRepository
	cache    redis.ProgramCache
}

// NewProgramService creates a new ProgramService. Cache may be nil, in
// which case every listing hits the database.
func NewProgramService(programs repository.ProgramRepository, cache redis.ProgramCache) *ProgramService {
	return &ProgramService{
		programs: programs,
		cache:    cache,
	}
}

// CreateProgramRequest contains the parameters for creating a program.
type CreateProgramRequest struct {
	Title       string
	Type        string
	Description string
	Price       float64
}

// List retrieves programs matching the filter.
func (s *ProgramService) List(ctx context.Context, filter repository.ProgramFilter) ([]*domain.Program, error) {
	if s.cache != nil && filter.IsZero() {
		cached, err := s.cache.GetPrograms(ctx)
		if err != nil {
			log.Printf("[CATALOG] cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	programs, err := s.programs.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && filter.IsZero() {
		if err := s.cache.SetPrograms(ctx, programs); err != nil {
			log.Printf("[CATALOG] cache write failed: %v", err)
		}
	}
	return programs, nil
}

// Get retrieves a program by ID.
func (s *ProgramService) Get(ctx context.Context, id string) (*domain.Program, error) {
	if id == "" {
		return nil, ErrInvalidProgramID
	}
	return s.programs.GetByID(ctx, id)
}

// Create adds a program to the catalog.
func (s *ProgramService) Create(ctx context.Context, req CreateProgramRequest) (*domain.Program, error) {
	if req.Title == "" {
		return nil, ErrMissingProgramTitle
	}
	if req.Price < 0 {
		return nil, ErrInvalidProgramPrice
	}

	program := &domain.Program{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := s.programs.Create(ctx, program); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return program, nil
}

// Update replaces the mutable fields of an existing program.
func (s *ProgramService) Update(ctx context.Context, id string, req CreateProgramRequest) (*domain.Program, error) {
	if id == "" {
		return nil, ErrInvalidProgramID
	}
	if req.Title == "" {
		return nil, ErrMissingProgramTitle
	}
	if req.Price < 0 {
		return nil, ErrInvalidProgramPrice
	}

	program := &domain.Program{
		ID:          id,
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := s.programs.Update(ctx, program); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return program, nil
}

// Delete removes a program by ID.
func (s *ProgramService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidProgramID
	}

	if err := s.programs.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *ProgramService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidatePrograms(ctx); err != nil {
		log.Printf("[CATALOG] cache invalidation failed: %v", err)
	}
}
