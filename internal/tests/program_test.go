package tests

import (
	"context"
	"errors"
	"testing"

	"fundingtrail/internal/domain"
	"fundingtrail/internal/repository"
	"fundingtrail/internal/service"
)

// ──────────────────────────────────────────────
// 1. CATALOG CRUD
// ──────────────────────────────────────────────

func TestProgramCreation_ValidInput_Succeeds(t *testing.T) {
	t.Parallel()

	programRepo := NewMockProgramRepository()
	programService := service.NewProgramService(programRepo, nil)

	program, err := programService.Create(context.Background(), service.CreateProgramRequest{
		Title:       "Seed Accelerator",
		Type:        "grant",
		Description: "Early-stage funding",
		Price:       500,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if program.ID == "" {
		t.Error("expected program ID to be set")
	}
	if program.Title != "Seed Accelerator" {
		t.Errorf("expected title to be kept, got %s", program.Title)
	}
}

func TestProgramCreation_InvalidInput_Fails(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		req     service.CreateProgramRequest
		wantErr error
	}{
		{
			name:    "missing title",
			req:     service.CreateProgramRequest{Type: "grant", Price: 100},
			wantErr: service.ErrMissingProgramTitle,
		},
		{
			name:    "negative price",
			req:     service.CreateProgramRequest{Title: "Seed", Price: -1},
			wantErr: service.ErrInvalidProgramPrice,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			programService := service.NewProgramService(NewMockProgramRepository(), nil)

			_, err := programService.Create(context.Background(), tc.req)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestProgramUpdate_UnknownID_ReturnsNotFound(t *testing.T) {
	t.Parallel()

	programService := service.NewProgramService(NewMockProgramRepository(), nil)

	_, err := programService.Update(context.Background(), "missing", service.CreateProgramRequest{
		Title: "Renamed",
		Price: 10,
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProgramDelete_RemovesProgram(t *testing.T) {
	t.Parallel()

	programRepo := NewMockProgramRepository()
	programRepo.AddProgram(&domain.Program{ID: "p1", Title: "Seed", Type: "grant", Price: 100})

	programService := service.NewProgramService(programRepo, nil)

	if err := programService.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if _, err := programService.Get(context.Background(), "p1"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	if err := programService.Delete(context.Background(), "p1"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for second delete, got %v", err)
	}
}

// ──────────────────────────────────────────────
// 2. LISTING FILTERS
// ──────────────────────────────────────────────

func TestProgramList_Filters(t *testing.T) {
	t.Parallel()

	programRepo := NewMockProgramRepository()
	programRepo.AddProgram(&domain.Program{ID: "p1", Title: "Seed", Type: "grant", Price: 100})
	programRepo.AddProgram(&domain.Program{ID: "p2", Title: "Series A", Type: "equity", Price: 100})
	programRepo.AddProgram(&domain.Program{ID: "p3", Title: "Bridge", Type: "equity", Price: 250})

	programService := service.NewProgramService(programRepo, nil)

	testCases := []struct {
		name   string
		filter repository.ProgramFilter
		want   int
	}{
		{name: "no filter", filter: repository.ProgramFilter{}, want: 3},
		{name: "by type", filter: repository.ProgramFilter{Type: "equity"}, want: 2},
		{name: "by price", filter: repository.ProgramFilter{Price: 100}, want: 2},
		{name: "by type and price", filter: repository.ProgramFilter{Type: "equity", Price: 250}, want: 1},
		{name: "no match", filter: repository.ProgramFilter{Type: "loan"}, want: 0},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			programs, err := programService.List(context.Background(), tc.filter)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if len(programs) != tc.want {
				t.Errorf("expected %d programs, got %d", tc.want, len(programs))
			}
		})
	}
}

// ──────────────────────────────────────────────
// 3. CATALOG CACHE
// ──────────────────────────────────────────────

func TestProgramList_UnfilteredListingUsesCache(t *testing.T) {
	t.Parallel()

	programRepo := NewMockProgramRepository()
	programRepo.AddProgram(&domain.Program{ID: "p1", Title: "Seed", Type: "grant", Price: 100})
	cache := NewMockProgramCache()

	programService := service.NewProgramService(programRepo, cache)

	// First listing misses the cache and fills it.
	if _, err := programService.List(context.Background(), repository.ProgramFilter{}); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cache.SetCallCount != 1 {
		t.Errorf("expected cache fill, got %d sets", cache.SetCallCount)
	}
	if programRepo.GetAllCallCount != 1 {
		t.Errorf("expected 1 repo read, got %d", programRepo.GetAllCallCount)
	}

	// Second listing is served from cache.
	programs, err := programService.List(context.Background(), repository.ProgramFilter{})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(programs) != 1 {
		t.Errorf("expected 1 cached program, got %d", len(programs))
	}
	if programRepo.GetAllCallCount != 1 {
		t.Errorf("expected repo untouched on cache hit, got %d reads", programRepo.GetAllCallCount)
	}
}

func TestProgramList_FilteredListingBypassesCache(t *testing.T) {
	t.Parallel()

	programRepo := NewMockProgramRepository()
	programRepo.AddProgram(&domain.Program{ID: "p1", Title: "Seed", Type: "grant", Price: 100})
	cache := NewMockProgramCache()

	programService := service.NewProgramService(programRepo, cache)

	if _, err := programService.List(context.Background(), repository.ProgramFilter{Type: "grant"}); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cache.GetCallCount != 0 || cache.SetCallCount != 0 {
		t.Error("expected filtered listing to bypass the cache")
	}
}

func TestProgramMutation_InvalidatesCache(t *testing.T) {
	t.Parallel()

	programRepo := NewMockProgramRepository()
	cache := NewMockProgramCache()
	programService := service.NewProgramService(programRepo, cache)

	program, err := programService.Create(context.Background(), service.CreateProgramRequest{
		Title: "Seed",
		Type:  "grant",
		Price: 100,
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cache.InvalidateCallCount != 1 {
		t.Errorf("expected invalidation after create, got %d", cache.InvalidateCallCount)
	}

	if _, err := programService.Update(context.Background(), program.ID, service.CreateProgramRequest{
		Title: "Seed II",
		Type:  "grant",
		Price: 150,
	}); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cache.InvalidateCallCount != 2 {
		t.Errorf("expected invalidation after update, got %d", cache.InvalidateCallCount)
	}

	if err := programService.Delete(context.Background(), program.ID); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cache.InvalidateCallCount != 3 {
		t.Errorf("expected invalidation after delete, got %d", cache.InvalidateCallCount)
	}
}

func TestProgramList_CacheErrorFallsBackToRepository(t *testing.T) {
	t.Parallel()

	programRepo := NewMockProgramRepository()
	programRepo.AddProgram(&domain.Program{ID: "p1", Title: "Seed", Type: "grant", Price: 100})
	cache := NewMockProgramCache()
	cache.GetError = errors.New("redis down")

	programService := service.NewProgramService(programRepo, cache)

	programs, err := programService.List(context.Background(), repository.ProgramFilter{})
	if err != nil {
		t.Fatalf("expected repo fallback, got: %v", err)
	}
	if len(programs) != 1 {
		t.Errorf("expected 1 program from repo, got %d", len(programs))
	}
}
