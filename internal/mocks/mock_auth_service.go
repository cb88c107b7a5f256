package mocks

import (
	"context"

	"github.com/mahir-soa/FYP/domain"
)

// MockAuthService implements domain.AuthService interface for testing handlers
type MockAuthService struct {
	RegisterFunc           func(ctx context.Context, name, email, password string) error
	VerifyOTPFunc          func(ctx context.Context, email, otp string) (*domain.AuthResult, error)
	ResendOTPFunc          func(ctx context.Context, email string) error
	LoginFunc              func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	VerifyEmailFunc        func(ctx context.Context, token string) error
	ResendVerificationFunc func(ctx context.Context, email string) error
	ForgotPasswordFunc     func(ctx context.Context, email string) error
	ResetPasswordFunc      func(ctx context.Context, token, newPassword string) error
	CurrentUserFunc        func(ctx context.Context, token string) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register stages a registration
func (m *MockAuthService) Register(ctx context.Context, name, email, password string) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	return nil
}

// VerifyOTP confirms a staged registration
func (m *MockAuthService) VerifyOTP(ctx context.Context, email, otp string) (*domain.AuthResult, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, email, otp)
	}
	return &domain.AuthResult{
		User:  &domain.User{ID: 1, Name: "Test User", Email: email, EmailVerified: true},
		Token: "token",
	}, nil
}

// ResendOTP refreshes the staged OTP
func (m *MockAuthService) ResendOTP(ctx context.Context, email string) error {
	if m.ResendOTPFunc != nil {
		return m.ResendOTPFunc(ctx, email)
	}
	return nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return &domain.AuthResult{
		User:  &domain.User{ID: 1, Name: "Test User", Email: email, EmailVerified: true},
		Token: "token",
	}, nil
}

// VerifyEmail consumes a verification token
func (m *MockAuthService) VerifyEmail(ctx context.Context, token string) error {
	if m.VerifyEmailFunc != nil {
		return m.VerifyEmailFunc(ctx, token)
	}
	return nil
}

// ResendVerification mints a fresh verification token
func (m *MockAuthService) ResendVerification(ctx context.Context, email string) error {
	if m.ResendVerificationFunc != nil {
		return m.ResendVerificationFunc(ctx, email)
	}
	return nil
}

// ForgotPassword mints a reset token
func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	return nil
}

// ResetPassword consumes a reset token
func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, token, newPassword)
	}
	return nil
}

// CurrentUser resolves the caller from a session token
func (m *MockAuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx, token)
	}
	return &domain.User{ID: 1, Name: "Test User", Email: "test@example.com", EmailVerified: true}, nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
