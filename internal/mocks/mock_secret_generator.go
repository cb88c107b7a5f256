package mocks

import "github.com/mahir-soa/FYP/domain"

// MockSecretGenerator implements domain.SecretGenerator interface for testing
type MockSecretGenerator struct {
	OTPFunc         func() (string, error)
	OpaqueTokenFunc func() string
}

// NewMockSecretGenerator creates a new MockSecretGenerator with default behaviors
func NewMockSecretGenerator() *MockSecretGenerator {
	return &MockSecretGenerator{}
}

// OTP returns a 6-digit code
func (m *MockSecretGenerator) OTP() (string, error) {
	if m.OTPFunc != nil {
		return m.OTPFunc()
	}
	// Default behavior: fixed code
	return "123456", nil
}

// OpaqueToken returns an opaque verification/reset token
func (m *MockSecretGenerator) OpaqueToken() string {
	if m.OpaqueTokenFunc != nil {
		return m.OpaqueTokenFunc()
	}
	// Default behavior: fixed token
	return "opaque-token"
}

// Compile-time interface compliance verification
var _ domain.SecretGenerator = (*MockSecretGenerator)(nil)
