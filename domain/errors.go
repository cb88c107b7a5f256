package domain

import "errors"

// Registration errors
var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrPendingNotFound = errors.New("no pending registration found")
	ErrOTPExpired      = errors.New("verification code has expired")
	ErrOTPInvalid      = errors.New("invalid verification code")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailNotFound      = errors.New("email not found")
)

// Verification / reset token errors
var (
	ErrAlreadyVerified              = errors.New("email already verified")
	ErrVerificationTokenInvalid     = errors.New("invalid verification token")
	ErrVerificationTokenExpired     = errors.New("verification token has expired")
	ErrResetTokenInvalid            = errors.New("invalid reset token")
	ErrResetTokenExpired            = errors.New("reset token has expired")
)

// Session token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Resource errors
var (
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrFareNotFound         = errors.New("fare not found")
)
