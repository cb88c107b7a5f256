package mocks

import (
	"context"

	"github.com/mahir-soa/FYP/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc                  func(ctx context.Context, user *domain.User) error
	FindByEmailFunc             func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc                func(ctx context.Context, id uint) (*domain.User, error)
	FindByVerificationTokenFunc func(ctx context.Context, token string) (*domain.User, error)
	FindByResetTokenFunc        func(ctx context.Context, token string) (*domain.User, error)
	ExistsByEmailFunc           func(ctx context.Context, email string) (bool, error)
	UpdateFunc                  func(ctx context.Context, user *domain.User) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds a user by email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by ID
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByVerificationToken finds a user holding the exact verification token
func (m *MockUserRepository) FindByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	if m.FindByVerificationTokenFunc != nil {
		return m.FindByVerificationTokenFunc(ctx, token)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByResetToken finds a user holding the exact reset token
func (m *MockUserRepository) FindByResetToken(ctx context.Context, token string) (*domain.User, error) {
	if m.FindByResetTokenFunc != nil {
		return m.FindByResetTokenFunc(ctx, token)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// ExistsByEmail reports whether a user with the email exists
func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	// Default behavior: does not exist
	return false, nil
}

// Update updates an existing user
func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
