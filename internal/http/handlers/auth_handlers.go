package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahir-soa/FYP/domain"
)

// AuthHandlers handles the credential lifecycle HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// VerifyOTPRequest represents an OTP verification request
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}

// EmailRequest carries the flows keyed by email only
type EmailRequest struct {
	Email string `json:"email" binding:"required"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyEmailRequest carries an opaque verification token
type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

// ResetPasswordRequest carries an opaque reset token and the new password
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// authErrorMessages maps domain failures to the client-facing message texts.
// These strings are the contract observable to clients; do not reword them.
var authErrorMessages = map[error]string{
	domain.ErrEmailTaken:                  "Email already registered",
	domain.ErrPendingNotFound:             "No pending registration found. Please register again.",
	domain.ErrOTPExpired:                  "Verification code has expired. Please register again.",
	domain.ErrOTPInvalid:                  "Invalid verification code",
	domain.ErrInvalidCredentials:          "Invalid email or password",
	domain.ErrEmailNotVerified:            "Please verify your email before logging in",
	domain.ErrVerificationTokenInvalid:    "Invalid verification token",
	domain.ErrVerificationTokenExpired:    "Verification token has expired",
	domain.ErrEmailNotFound:               "Email not found",
	domain.ErrAlreadyVerified:             "Email is already verified",
	domain.ErrResetTokenInvalid:           "Invalid reset token",
	domain.ErrResetTokenExpired:           "Reset token has expired",
	domain.ErrTokenInvalid:                "Invalid token",
	domain.ErrTokenExpired:                "Invalid token",
	domain.ErrTokenMalformed:              "Invalid token",
	domain.ErrUserNotFound:                "User not found",
}

// fail writes the flat 400 error shape every domain failure maps to
func fail(c *gin.Context, err error) {
	for sentinel, msg := range authErrorMessages {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msg})
			return
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": "Something went wrong"})
}

// Register handles user registration: stages a pending signup and sends the OTP
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email, and password are required"})
		return
	}

	if err := h.authSvc.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Verification code sent to your email",
		"email":   req.Email,
	})
}

// VerifyOTP handles OTP confirmation, promoting the staged signup to a user
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and verification code are required"})
		return
	}

	result, err := h.authSvc.VerifyOTP(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Account created successfully",
		"token":   result.Token,
		"user":    result.User.PublicView(),
	})
}

// ResendOTP regenerates the staged OTP and restarts its window
func (h *AuthHandlers) ResendOTP(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	if err := h.authSvc.ResendOTP(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "New verification code sent to your email"})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user":  result.User.PublicView(),
	})
}

// VerifyEmail consumes an opaque verification token
func (h *AuthHandlers) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token is required"})
		return
	}

	if err := h.authSvc.VerifyEmail(c.Request.Context(), req.Token); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}

// ResendVerification mints a fresh verification token for an existing user
func (h *AuthHandlers) ResendVerification(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	if err := h.authSvc.ResendVerification(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification email sent"})
}

// ForgotPassword mints a reset token and mails it
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	if err := h.authSvc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent"})
}

// ResetPassword consumes a reset token and replaces the password
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token and password are required"})
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

// Me returns the caller's public user view. The raw bearer token is placed
// in the context by the auth middleware.
func (h *AuthHandlers) Me(c *gin.Context) {
	token := c.GetString("token")

	user, err := h.authSvc.CurrentUser(c.Request.Context(), token)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, user.PublicView())
}
