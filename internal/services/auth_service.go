package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mahir-soa/FYP/domain"
)

// AuthServiceImpl implements domain.AuthService. It orchestrates the
// OTP-based registration workflow, login, and the verification/reset token
// lifecycles over the credential store.
type AuthServiceImpl struct {
	userRepo        domain.UserRepository
	pendingRepo     domain.PendingRegistrationRepository
	passwordSvc     domain.PasswordService
	tokenSvc        domain.TokenService
	secrets         domain.SecretGenerator
	notificationSvc domain.NotificationService

	otpTTL          time.Duration
	verificationTTL time.Duration
	resetTTL        time.Duration

	// now is swappable for expiry tests
	now func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	pendingRepo domain.PendingRegistrationRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	secrets domain.SecretGenerator,
	notificationSvc domain.NotificationService,
	otpTTL, verificationTTL, resetTTL time.Duration,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo:        userRepo,
		pendingRepo:     pendingRepo,
		passwordSvc:     passwordSvc,
		tokenSvc:        tokenSvc,
		secrets:         secrets,
		notificationSvc: notificationSvc,
		otpTTL:          otpTTL,
		verificationTTL: verificationTTL,
		resetTTL:        resetTTL,
		now:             time.Now,
	}
}

// Register implements domain.AuthService. The signup is staged as a pending
// registration; no User row exists until the OTP is confirmed. A repeated
// registration for the same email replaces the prior staging record.
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password string) error {
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return domain.ErrEmailTaken
	}

	if err := s.pendingRepo.DeleteByEmail(ctx, email); err != nil {
		return fmt.Errorf("failed to clear prior registration: %w", err)
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	otp, err := s.secrets.OTP()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	pending := &domain.PendingRegistration{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		OTP:          otp,
		OTPExpiry:    s.now().Add(s.otpTTL),
		CreatedAt:    s.now(),
	}

	if err := s.pendingRepo.Save(ctx, pending); err != nil {
		return fmt.Errorf("failed to stage registration: %w", err)
	}

	go s.notificationSvc.SendOTPEmail(email, name, otp)
	return nil
}

// VerifyOTP implements domain.AuthService. OTP possession proves ownership
// of the email, so the promoted user is created already verified. An expired
// pending record is deleted on the failure path so the store self-cleans.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, email, otp string) (*domain.AuthResult, error) {
	pending, err := s.pendingRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if pending.Expired(s.now()) {
		if err := s.pendingRepo.DeleteByEmail(ctx, email); err != nil {
			return nil, fmt.Errorf("failed to delete stale registration: %w", err)
		}
		return nil, domain.ErrOTPExpired
	}

	if pending.OTP != otp {
		return nil, domain.ErrOTPInvalid
	}

	user := &domain.User{
		Name:          pending.Name,
		Email:         pending.Email,
		PasswordHash:  pending.PasswordHash,
		EmailVerified: true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.pendingRepo.DeleteByEmail(ctx, email); err != nil {
		return nil, fmt.Errorf("failed to delete pending registration: %w", err)
	}

	token, err := s.tokenSvc.Generate(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

// ResendOTP implements domain.AuthService. A fresh OTP replaces the old one,
// which becomes invalid, and the expiry window restarts.
func (s *AuthServiceImpl) ResendOTP(ctx context.Context, email string) error {
	pending, err := s.pendingRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	otp, err := s.secrets.OTP()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	pending.OTP = otp
	pending.OTPExpiry = s.now().Add(s.otpTTL)

	if err := s.pendingRepo.Save(ctx, pending); err != nil {
		return fmt.Errorf("failed to update pending registration: %w", err)
	}

	go s.notificationSvc.SendOTPEmail(email, pending.Name, otp)
	return nil
}

// Login implements domain.AuthService. Unknown email and wrong password
// return the same error so callers cannot tell which one failed.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, domain.ErrEmailNotVerified
	}

	token, err := s.tokenSvc.Generate(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

// VerifyEmail implements domain.AuthService. Tokens are single use: the
// token and its expiry are cleared on success.
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.userRepo.FindByVerificationToken(ctx, token)
	if err != nil {
		return domain.ErrVerificationTokenInvalid
	}

	if user.VerificationTokenExpiry != nil && user.VerificationTokenExpiry.Before(s.now()) {
		return domain.ErrVerificationTokenExpired
	}

	user.EmailVerified = true
	user.VerificationToken = ""
	user.VerificationTokenExpiry = nil

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// ResendVerification implements domain.AuthService. Minting a new token
// overwrites any outstanding one.
func (s *AuthServiceImpl) ResendVerification(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrEmailNotFound
	}

	if user.EmailVerified {
		return domain.ErrAlreadyVerified
	}

	expiry := s.now().Add(s.verificationTTL)
	user.VerificationToken = s.secrets.OpaqueToken()
	user.VerificationTokenExpiry = &expiry

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	go s.notificationSvc.SendVerificationEmail(email, user.Name, user.VerificationToken)
	return nil
}

// ForgotPassword implements domain.AuthService. Email verification is not
// required to request a reset.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.ErrEmailNotFound
	}

	expiry := s.now().Add(s.resetTTL)
	user.ResetToken = s.secrets.OpaqueToken()
	user.ResetTokenExpiry = &expiry

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	go s.notificationSvc.SendPasswordResetEmail(email, user.Name, user.ResetToken)
	return nil
}

// ResetPassword implements domain.AuthService. The reset token is cleared on
// success so replaying it fails as an invalid token.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(ctx, token)
	if err != nil {
		return domain.ErrResetTokenInvalid
	}

	if user.ResetTokenExpiry != nil && user.ResetTokenExpiry.Before(s.now()) {
		return domain.ErrResetTokenExpired
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hashedPassword
	user.ResetToken = ""
	user.ResetTokenExpiry = nil

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// CurrentUser implements domain.AuthService. Token validation is the sole
// authorization gate for the current-user lookup.
func (s *AuthServiceImpl) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokenSvc.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*AuthServiceImpl)(nil)
