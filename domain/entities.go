package domain

import "time"

// User represents a verified account in the system
type User struct {
	ID                      uint
	Name                    string
	Email                   string
	PasswordHash            string
	EmailVerified           bool
	VerificationToken       string
	VerificationTokenExpiry *time.Time
	ResetToken              string
	ResetTokenExpiry        *time.Time
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// PublicView returns the user fields safe to expose to clients
func (u *User) PublicView() map[string]interface{} {
	return map[string]interface{}{
		"id":            u.ID,
		"name":          u.Name,
		"email":         u.Email,
		"emailVerified": u.EmailVerified,
	}
}

// PendingRegistration is a staged signup awaiting OTP confirmation.
// At most one exists per email; it is deleted when promoted to a User.
type PendingRegistration struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	OTP          string    `json:"otp"`
	OTPExpiry    time.Time `json:"otp_expiry"`
	CreatedAt    time.Time `json:"created_at"`
}

// Expired reports whether the OTP window has elapsed
func (p *PendingRegistration) Expired(now time.Time) bool {
	return now.After(p.OTPExpiry)
}

// AuthResult represents a successful authentication outcome
type AuthResult struct {
	User  *User
	Token string
}

// TokenClaims represents the identity claims carried by a session token
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"sub"`
	Name      string `json:"name"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Expense represents a single tracked expense
type Expense struct {
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Mood        string  `json:"mood"`
	SubType     string  `json:"subType"`
	FromZone    *int    `json:"fromZone"`
	ToZone      *int    `json:"toZone"`
	IsPeak      *bool   `json:"isPeak"`
}

// Subscription billing cycles
const (
	BillingWeekly  = "WEEKLY"
	BillingMonthly = "MONTHLY"
	BillingYearly  = "YEARLY"
)

// Subscription statuses
const (
	SubscriptionActive    = "ACTIVE"
	SubscriptionPaused    = "PAUSED"
	SubscriptionCancelled = "CANCELLED"
)

// Subscription represents a recurring payment being tracked
type Subscription struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Cost            float64 `json:"cost"`
	BillingCycle    string  `json:"billingCycle"`
	NextPaymentDate string  `json:"nextPaymentDate"`
	LastUsedDate    string  `json:"lastUsedDate"`
	Status          string  `json:"status"`
	ProviderKey     string  `json:"providerKey"`
	Category        string  `json:"category"`
}

// Fare is one row of the transit fare table. Bus fares are flat and carry
// no zones; train fares are keyed by a normalised (from <= to) zone pair.
type Fare struct {
	ID            uint
	TransportType string
	FromZone      *int
	ToZone        *int
	PeakFare      float64
	OffPeakFare   float64
}

// Conversation groups chat messages under a title
type Conversation struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	UserID    uint      `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Chat message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat message within a conversation
type Message struct {
	ID             uint      `json:"id"`
	ConversationID uint      `json:"conversationId"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}
