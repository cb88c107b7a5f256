package mocks

import (
	"context"

	"github.com/mahir-soa/FYP/domain"
)

// MockPendingRepository implements domain.PendingRegistrationRepository for testing
type MockPendingRepository struct {
	SaveFunc          func(ctx context.Context, pending *domain.PendingRegistration) error
	FindByEmailFunc   func(ctx context.Context, email string) (*domain.PendingRegistration, error)
	DeleteByEmailFunc func(ctx context.Context, email string) error
}

// NewMockPendingRepository creates a new MockPendingRepository with default behaviors
func NewMockPendingRepository() *MockPendingRepository {
	return &MockPendingRepository{}
}

// Save stores a pending registration, replacing any prior one for the email
func (m *MockPendingRepository) Save(ctx context.Context, pending *domain.PendingRegistration) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, pending)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds a pending registration by email
func (m *MockPendingRepository) FindByEmail(ctx context.Context, email string) (*domain.PendingRegistration, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrPendingNotFound
}

// DeleteByEmail removes a pending registration by email
func (m *MockPendingRepository) DeleteByEmail(ctx context.Context, email string) error {
	if m.DeleteByEmailFunc != nil {
		return m.DeleteByEmailFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.PendingRegistrationRepository = (*MockPendingRepository)(nil)
