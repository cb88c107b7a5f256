package mocks

import (
	"sync"

	"github.com/mahir-soa/FYP/domain"
)

// SentMail records one outbound notification for assertions
type SentMail struct {
	Kind   string // "otp", "verification", "reset"
	To     string
	Name   string
	Secret string
}

// MockNotificationService implements domain.NotificationService for testing.
// It records every send; the mutex matters because the auth service
// notifies from goroutines.
type MockNotificationService struct {
	mu   sync.Mutex
	sent []SentMail

	SendOTPEmailFunc           func(to, name, otp string)
	SendVerificationEmailFunc  func(to, name, token string)
	SendPasswordResetEmailFunc func(to, name, token string)
}

// NewMockNotificationService creates a new MockNotificationService
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendOTPEmail records an OTP notification
func (m *MockNotificationService) SendOTPEmail(to, name, otp string) {
	if m.SendOTPEmailFunc != nil {
		m.SendOTPEmailFunc(to, name, otp)
		return
	}
	m.record(SentMail{Kind: "otp", To: to, Name: name, Secret: otp})
}

// SendVerificationEmail records a verification notification
func (m *MockNotificationService) SendVerificationEmail(to, name, token string) {
	if m.SendVerificationEmailFunc != nil {
		m.SendVerificationEmailFunc(to, name, token)
		return
	}
	m.record(SentMail{Kind: "verification", To: to, Name: name, Secret: token})
}

// SendPasswordResetEmail records a reset notification
func (m *MockNotificationService) SendPasswordResetEmail(to, name, token string) {
	if m.SendPasswordResetEmailFunc != nil {
		m.SendPasswordResetEmailFunc(to, name, token)
		return
	}
	m.record(SentMail{Kind: "reset", To: to, Name: name, Secret: token})
}

// Sent returns a copy of everything recorded so far
func (m *MockNotificationService) Sent() []SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMail, len(m.sent))
	copy(out, m.sent)
	return out
}

func (m *MockNotificationService) record(mail SentMail) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, mail)
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
