package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByVerificationToken(ctx context.Context, token string) (*User, error)
	FindByResetToken(ctx context.Context, token string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *User) error
}

// PendingRegistrationRepository defines the staging store for unconfirmed
// signups. Save replaces any prior record for the same email.
type PendingRegistrationRepository interface {
	Save(ctx context.Context, pending *PendingRegistration) error
	FindByEmail(ctx context.Context, email string) (*PendingRegistration, error)
	DeleteByEmail(ctx context.Context, email string) error
}

// AuthService defines the credential lifecycle business logic
type AuthService interface {
	Register(ctx context.Context, name, email, password string) error
	VerifyOTP(ctx context.Context, email, otp string) (*AuthResult, error)
	ResendOTP(ctx context.Context, email string) error
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	VerifyEmail(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	CurrentUser(ctx context.Context, token string) (*User, error)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations. Tokens are stateless and
// self-contained; there is no revocation list.
type TokenService interface {
	Generate(userID uint, email, name string) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// SecretGenerator produces the short-lived secrets used by the credential
// flows: 6-digit numeric OTPs and opaque, unguessable tokens.
type SecretGenerator interface {
	OTP() (string, error)
	OpaqueToken() string
}

// NotificationService defines outbound mail operations. Implementations are
// fire-and-forget: delivery failure is logged, never returned to the caller.
type NotificationService interface {
	SendOTPEmail(to, name, otp string)
	SendVerificationEmail(to, name, token string)
	SendPasswordResetEmail(to, name, token string)
}

// ExpenseRepository defines expense data access operations
type ExpenseRepository interface {
	FindAll(ctx context.Context) ([]Expense, error)
	FindByID(ctx context.Context, id uint) (*Expense, error)
	Create(ctx context.Context, expense *Expense) error
	Update(ctx context.Context, expense *Expense) error
	Delete(ctx context.Context, id uint) error
}

// SubscriptionRepository defines subscription data access operations
type SubscriptionRepository interface {
	FindAll(ctx context.Context) ([]Subscription, error)
	FindByID(ctx context.Context, id uint) (*Subscription, error)
	Create(ctx context.Context, sub *Subscription) error
	Update(ctx context.Context, sub *Subscription) error
	Delete(ctx context.Context, id uint) error
}

// SubscriptionService defines subscription business logic beyond plain CRUD
type SubscriptionService interface {
	Upcoming(ctx context.Context, days int) ([]Subscription, error)
	Inactive(ctx context.Context, days int) ([]Subscription, error)
	MarkUsed(ctx context.Context, id uint) (*Subscription, error)
	Cancel(ctx context.Context, id uint) (*Subscription, error)
}

// FareRepository defines fare table access operations
type FareRepository interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, fare *Fare) error
	FindByTransportType(ctx context.Context, transportType string) (*Fare, error)
	FindByZones(ctx context.Context, transportType string, fromZone, toZone int) (*Fare, error)
}

// FareService defines the fare calculator
type FareService interface {
	CalculateFare(ctx context.Context, transportType string, fromZone, toZone *int, isPeak bool) (float64, bool, error)
}

// ConversationRepository defines chat conversation data access operations
type ConversationRepository interface {
	FindAll(ctx context.Context) ([]Conversation, error)
	FindByID(ctx context.Context, id uint) (*Conversation, error)
	Create(ctx context.Context, conv *Conversation) error
	Update(ctx context.Context, conv *Conversation) error
	Delete(ctx context.Context, id uint) error
	FindMessages(ctx context.Context, conversationID uint) ([]Message, error)
	AddMessage(ctx context.Context, msg *Message) error
}

// ChatService defines the AI assistant proxy
type ChatService interface {
	Chat(ctx context.Context, message string, includeExpenseContext bool) (string, error)
}
