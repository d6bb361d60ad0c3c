package tests

import (
	"context"
	"sync"
	"sync/atomic"

	"fundingtrail/internal/domain"
	"fundingtrail/internal/gateway"
	"fundingtrail/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK GATEWAY CHARGER
// ──────────────────────────────────────────────

// MockCharger is a mock implementation of gateway.Charger.
type MockCharger struct {
	mu       sync.Mutex
	requests []gateway.ChargeRequest

	// Result returned on success.
	Result *gateway.ChargeResult

	// Counters for verification
	ChargeCallCount int32

	// Error injection
	ChargeError error
}

// NewMockCharger creates a mock charger returning a successful result.
func NewMockCharger() *MockCharger {
	return &MockCharger{
		Result: &gateway.ChargeResult{Status: "success", TransactionID: "tx_1"},
	}
}

func (m *MockCharger) Charge(ctx context.Context, req gateway.ChargeRequest) (*gateway.ChargeResult, error) {
	atomic.AddInt32(&m.ChargeCallCount, 1)
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	if m.ChargeError != nil {
		return nil, m.ChargeError
	}
	result := *m.Result
	return &result, nil
}

// LastRequest returns the most recent charge request, or nil.
func (m *MockCharger) LastRequest() *gateway.ChargeRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return nil
	}
	req := m.requests[len(m.requests)-1]
	return &req
}

// ──────────────────────────────────────────────
// MOCK NOTIFIER
// ──────────────────────────────────────────────

// MockNotifier is a mock implementation of service.Notifier.
type MockNotifier struct {
	mu         sync.Mutex
	recipients []string

	// Counters for verification
	NotifyCallCount int32

	// Error injection
	NotifyError error
}

// NewMockNotifier creates a new mock notifier.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) NotifyPaymentSuccess(ctx context.Context, toAddress string) error {
	atomic.AddInt32(&m.NotifyCallCount, 1)
	if m.NotifyError != nil {
		return m.NotifyError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recipients = append(m.recipients, toAddress)
	return nil
}

// Recipients returns the addresses notified so far.
func (m *MockNotifier) Recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.recipients))
	copy(out, m.recipients)
	return out
}

// ──────────────────────────────────────────────
// MOCK CHECKOUT REPOSITORY
// ──────────────────────────────────────────────

// MockCheckoutRepository is a mock implementation of CheckoutRepository.
type MockCheckoutRepository struct {
	mu        sync.RWMutex
	checkouts map[string]*domain.Checkout

	// Counters for verification
	InsertCallCount int32

	// Error injection
	InsertError error
}

// NewMockCheckoutRepository creates a new mock checkout repository.
func NewMockCheckoutRepository() *MockCheckoutRepository {
	return &MockCheckoutRepository{
		checkouts: make(map[string]*domain.Checkout),
	}
}

func (m *MockCheckoutRepository) Insert(ctx context.Context, checkout *domain.Checkout) error {
	atomic.AddInt32(&m.InsertCallCount, 1)
	if m.InsertError != nil {
		return m.InsertError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *checkout
	m.checkouts[checkout.ID] = &copy
	return nil
}

func (m *MockCheckoutRepository) GetByID(ctx context.Context, id string) (*domain.Checkout, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	checkout, ok := m.checkouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *checkout
	return &copy, nil
}

// All returns every stored checkout for test assertions.
func (m *MockCheckoutRepository) All() []*domain.Checkout {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Checkout, 0, len(m.checkouts))
	for _, c := range m.checkouts {
		copy := *c
		result = append(result, &copy)
	}
	return result
}

// ──────────────────────────────────────────────
// MOCK PROGRAM REPOSITORY
// ──────────────────────────────────────────────

// MockProgramRepository is a mock implementation of ProgramRepository.
type MockProgramRepository struct {
	mu       sync.RWMutex
	programs map[string]*domain.Program

	// Counters for verification
	GetAllCallCount int32

	// Error injection
	CreateError error
	GetAllError error
}

// NewMockProgramRepository creates a new mock program repository.
func NewMockProgramRepository() *MockProgramRepository {
	return &MockProgramRepository{
		programs: make(map[string]*domain.Program),
	}
}

// AddProgram seeds a program into the mock repository.
func (m *MockProgramRepository) AddProgram(program *domain.Program) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.programs[program.ID] = program
}

func (m *MockProgramRepository) Create(ctx context.Context, program *domain.Program) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *program
	m.programs[program.ID] = &copy
	return nil
}

func (m *MockProgramRepository) GetByID(ctx context.Context, id string) (*domain.Program, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	program, ok := m.programs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *program
	return &copy, nil
}

func (m *MockProgramRepository) GetAll(ctx context.Context, filter repository.ProgramFilter) ([]*domain.Program, error) {
	atomic.AddInt32(&m.GetAllCallCount, 1)
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Program
	for _, p := range m.programs {
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		if filter.Price != 0 && int(p.Price) != filter.Price {
			continue
		}
		copy := *p
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockProgramRepository) Update(ctx context.Context, program *domain.Program) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.programs[program.ID]
	if !ok {
		return repository.ErrNotFound
	}
	program.CreatedAt = existing.CreatedAt
	copy := *program
	m.programs[program.ID] = &copy
	return nil
}

func (m *MockProgramRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.programs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.programs, id)
	return nil
}

// ──────────────────────────────────────────────
// MOCK PROGRAM CACHE
// ──────────────────────────────────────────────

// MockProgramCache is a mock implementation of redis.ProgramCache.
type MockProgramCache struct {
	mu     sync.Mutex
	cached []*domain.Program

	// Counters for verification
	GetCallCount        int32
	SetCallCount        int32
	InvalidateCallCount int32

	// Error injection
	GetError error
	SetError error
}

// NewMockProgramCache creates a new mock program cache.
func NewMockProgramCache() *MockProgramCache {
	return &MockProgramCache{}
}

func (m *MockProgramCache) GetPrograms(ctx context.Context) ([]*domain.Program, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cached, nil
}

func (m *MockProgramCache) SetPrograms(ctx context.Context, programs []*domain.Program) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	if m.SetError != nil {
		return m.SetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cached = programs
	return nil
}

func (m *MockProgramCache) InvalidatePrograms(ctx context.Context) error {
	atomic.AddInt32(&m.InvalidateCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cached = nil
	return nil
}

// ──────────────────────────────────────────────
// MOCK USER REPOSITORY
// ──────────────────────────────────────────────

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	// Error injection
	CreateError error
}

// NewMockUserRepository creates a new mock user repository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	copy := *user
	m.users[user.ID] = &copy
	return nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		copy := *u
		result = append(result, &copy)
	}
	return result, nil
}
