package notifications

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/mahir-soa/FYP/domain"
)

// EmailServiceImpl implements domain.NotificationService over SMTP.
// Every secret is logged before the delivery attempt so operators always
// have a manual fallback channel, and delivery failures are swallowed:
// the credential flows must not depend on email deliverability.
type EmailServiceImpl struct {
	host        string
	port        int
	username    string
	password    string
	from        string
	frontendURL string
}

// NewEmailService creates a new email notification service
func NewEmailService(host string, port int, username, password, from, frontendURL string) domain.NotificationService {
	return &EmailServiceImpl{
		host:        host,
		port:        port,
		username:    username,
		password:    password,
		from:        from,
		frontendURL: frontendURL,
	}
}

// SendOTPEmail implements domain.NotificationService
func (s *EmailServiceImpl) SendOTPEmail(to, name, otp string) {
	log.Printf("========================================")
	log.Printf("OTP VERIFICATION EMAIL for %s", to)
	log.Printf("OTP Code: %s", otp)
	log.Printf("========================================")

	subject := "Your Verification Code - ExpenseTracker"
	body := fmt.Sprintf(
		"Hi %s,\n\nUse the verification code below to complete your registration.\n\n%s\n\nThis code will expire in 10 minutes.\n\nIf you didn't create an account, you can safely ignore this email.\n",
		name, otp,
	)

	if err := s.send(to, subject, body); err != nil {
		log.Printf("failed to send OTP email to %s: %v. Use the logged OTP above to verify manually.", to, err)
		return
	}
	log.Printf("OTP email sent successfully to %s", to)
}

// SendVerificationEmail implements domain.NotificationService
func (s *EmailServiceImpl) SendVerificationEmail(to, name, token string) {
	verifyURL := s.frontendURL + "/verify-email?token=" + token

	log.Printf("========================================")
	log.Printf("VERIFICATION EMAIL for %s", to)
	log.Printf("Verify URL: %s", verifyURL)
	log.Printf("========================================")

	subject := "Verify Your Email - ExpenseTracker"
	body := fmt.Sprintf(
		"Hi %s,\n\nPlease verify your email address by opening the link below.\n\n%s\n\nThis link will expire in 24 hours. If you didn't create an account, you can safely ignore this email.\n",
		name, verifyURL,
	)

	if err := s.send(to, subject, body); err != nil {
		log.Printf("failed to send verification email to %s: %v. Use the logged URL above to verify manually.", to, err)
		return
	}
	log.Printf("verification email sent successfully to %s", to)
}

// SendPasswordResetEmail implements domain.NotificationService
func (s *EmailServiceImpl) SendPasswordResetEmail(to, name, token string) {
	resetURL := s.frontendURL + "/reset-password?token=" + token

	log.Printf("========================================")
	log.Printf("PASSWORD RESET EMAIL for %s", to)
	log.Printf("Reset URL: %s", resetURL)
	log.Printf("========================================")

	subject := "Reset Your Password - ExpenseTracker"
	body := fmt.Sprintf(
		"Hi %s,\n\nWe received a request to reset your password. Open the link below to create a new password.\n\n%s\n\nThis link will expire in 1 hour. If you didn't request a password reset, you can safely ignore this email.\n",
		name, resetURL,
	)

	if err := s.send(to, subject, body); err != nil {
		log.Printf("failed to send password reset email to %s: %v. Use the logged URL above to reset manually.", to, err)
		return
	}
	log.Printf("password reset email sent successfully to %s", to)
}

// send delivers one message. If SMTP is not configured the message is
// logged instead of sent, matching the development setup.
func (s *EmailServiceImpl) send(to, subject, body string) error {
	if s.host == "" {
		log.Printf("[MOCK EMAIL] To: %s, Subject: %s", to, subject)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + s.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	var a smtp.Auth
	if s.username != "" {
		a = smtp.PlainAuth("", s.username, s.password, s.host)
	}
	return smtp.SendMail(addr, a, s.from, []string{to}, []byte(msg))
}
