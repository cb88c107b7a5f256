package mocks

import (
	"fmt"
	"time"

	"github.com/mahir-soa/FYP/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateFunc func(userID uint, email, name string) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate issues a session token
func (m *MockTokenService) Generate(userID uint, email, name string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, email, name)
	}
	// Default behavior: deterministic fake token
	return fmt.Sprintf("token_%d_%s", userID, email), nil
}

// Validate validates a session token
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: valid claims for user 1
	now := time.Now()
	return &domain.TokenClaims{
		UserID:    1,
		Email:     "test@example.com",
		Name:      "Test User",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}, nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
