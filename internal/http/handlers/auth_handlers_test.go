package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mahir-soa/FYP/domain"
	"github.com/mahir-soa/FYP/internal/mocks"
)

func performJSON(t *testing.T, handler gin.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	handler(c)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func TestAuthHandlers_Register(t *testing.T) {
	tests := []struct {
		name            string
		requestBody     interface{}
		setupMocks      func(*mocks.MockAuthService)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "successful registration",
			requestBody:     RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"},
			setupMocks:      func(svc *mocks.MockAuthService) {},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Verification code sent to your email",
		},
		{
			name:            "missing fields",
			requestBody:     map[string]string{"email": "alice@example.com"},
			setupMocks:      func(svc *mocks.MockAuthService) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Name, email, and password are required",
		},
		{
			name:            "short password",
			requestBody:     RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "abc"},
			setupMocks:      func(svc *mocks.MockAuthService) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Name, email, and password are required",
		},
		{
			name:        "email already registered",
			requestBody: RegisterRequest{Name: "Alice", Email: "taken@example.com", Password: "password123"},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.RegisterFunc = func(ctx context.Context, name, email, password string) error {
					return domain.ErrEmailTaken
				}
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Email already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService()
			tt.setupMocks(svc)
			h := NewAuthHandlers(svc)

			w := performJSON(t, h.Register, tt.requestBody)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (%s)", tt.expectedStatus, w.Code, w.Body.String())
			}
			body := decodeBody(t, w)
			if body["message"] != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, body["message"])
			}
		})
	}
}

func TestAuthHandlers_VerifyOTP(t *testing.T) {
	tests := []struct {
		name            string
		requestBody     interface{}
		setupMocks      func(*mocks.MockAuthService)
		expectedStatus  int
		expectedMessage string
		validateBody    func(t *testing.T, body map[string]interface{})
	}{
		{
			name:            "successful verification returns token and user",
			requestBody:     VerifyOTPRequest{Email: "alice@example.com", OTP: "123456"},
			setupMocks:      func(svc *mocks.MockAuthService) {},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Account created successfully",
			validateBody: func(t *testing.T, body map[string]interface{}) {
				if body["token"] != "token" {
					t.Errorf("expected a session token, got %v", body["token"])
				}
				user, ok := body["user"].(map[string]interface{})
				if !ok {
					t.Fatalf("expected a user object, got %v", body["user"])
				}
				if user["email"] != "alice@example.com" {
					t.Errorf("unexpected user email %v", user["email"])
				}
				if _, leaked := user["password"]; leaked {
					t.Error("password must not appear in the response")
				}
			},
		},
		{
			name:        "no pending registration",
			requestBody: VerifyOTPRequest{Email: "alice@example.com", OTP: "123456"},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.VerifyOTPFunc = func(ctx context.Context, email, otp string) (*domain.AuthResult, error) {
					return nil, domain.ErrPendingNotFound
				}
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "No pending registration found. Please register again.",
		},
		{
			name:        "expired code",
			requestBody: VerifyOTPRequest{Email: "alice@example.com", OTP: "123456"},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.VerifyOTPFunc = func(ctx context.Context, email, otp string) (*domain.AuthResult, error) {
					return nil, domain.ErrOTPExpired
				}
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Verification code has expired. Please register again.",
		},
		{
			name:        "wrong code",
			requestBody: VerifyOTPRequest{Email: "alice@example.com", OTP: "999999"},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.VerifyOTPFunc = func(ctx context.Context, email, otp string) (*domain.AuthResult, error) {
					return nil, domain.ErrOTPInvalid
				}
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid verification code",
		},
		{
			name:            "missing otp",
			requestBody:     map[string]string{"email": "alice@example.com"},
			setupMocks:      func(svc *mocks.MockAuthService) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Email and verification code are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService()
			tt.setupMocks(svc)
			h := NewAuthHandlers(svc)

			w := performJSON(t, h.VerifyOTP, tt.requestBody)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (%s)", tt.expectedStatus, w.Code, w.Body.String())
			}
			body := decodeBody(t, w)
			if body["message"] != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, body["message"])
			}
			if tt.validateBody != nil {
				tt.validateBody(t, body)
			}
		})
	}
}

func TestAuthHandlers_Login(t *testing.T) {
	tests := []struct {
		name            string
		requestBody     interface{}
		setupMocks      func(*mocks.MockAuthService)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:           "successful login",
			requestBody:    LoginRequest{Email: "alice@example.com", Password: "password123"},
			setupMocks:     func(svc *mocks.MockAuthService) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "bad credentials",
			requestBody: LoginRequest{Email: "alice@example.com", Password: "wrong"},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
					return nil, domain.ErrInvalidCredentials
				}
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid email or password",
		},
		{
			name:        "unverified email",
			requestBody: LoginRequest{Email: "alice@example.com", Password: "password123"},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
					return nil, domain.ErrEmailNotVerified
				}
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Please verify your email before logging in",
		},
		{
			name:            "missing password",
			requestBody:     map[string]string{"email": "alice@example.com"},
			setupMocks:      func(svc *mocks.MockAuthService) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Email and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService()
			tt.setupMocks(svc)
			h := NewAuthHandlers(svc)

			w := performJSON(t, h.Login, tt.requestBody)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (%s)", tt.expectedStatus, w.Code, w.Body.String())
			}
			body := decodeBody(t, w)
			if tt.expectedMessage != "" && body["message"] != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, body["message"])
			}
			if tt.expectedStatus == http.StatusOK {
				if body["token"] == "" || body["token"] == nil {
					t.Error("expected a session token")
				}
			}
		})
	}
}

func TestAuthHandlers_VerifyEmail(t *testing.T) {
	tests := []struct {
		name            string
		requestBody     interface{}
		setupMocks      func(*mocks.MockAuthService)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "valid token",
			requestBody:     VerifyEmailRequest{Token: "tok-1"},
			setupMocks:      func(svc *mocks.MockAuthService) {},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Email verified successfully",
		},
		{
			name:        "invalid token",
			requestBody: VerifyEmailRequest{Token: "bad"},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.VerifyEmailFunc = func(ctx context.Context, token string) error {
					return domain.ErrVerificationTokenInvalid
				}
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid verification token",
		},
		{
			name:        "expired token",
			requestBody: VerifyEmailRequest{Token: "old"},
			setupMocks: func(svc *mocks.MockAuthService) {
				svc.VerifyEmailFunc = func(ctx context.Context, token string) error {
					return domain.ErrVerificationTokenExpired
				}
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Verification token has expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService()
			tt.setupMocks(svc)
			h := NewAuthHandlers(svc)

			w := performJSON(t, h.VerifyEmail, tt.requestBody)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d (%s)", tt.expectedStatus, w.Code, w.Body.String())
			}
			body := decodeBody(t, w)
			if body["message"] != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, body["message"])
			}
		})
	}
}

func TestAuthHandlers_PasswordResetFlow(t *testing.T) {
	t.Run("forgot password", func(t *testing.T) {
		svc := mocks.NewMockAuthService()
		h := NewAuthHandlers(svc)

		w := performJSON(t, h.ForgotPassword, EmailRequest{Email: "alice@example.com"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeBody(t, w)["message"] != "Password reset email sent" {
			t.Error("unexpected message")
		}
	})

	t.Run("forgot password unknown email", func(t *testing.T) {
		svc := mocks.NewMockAuthService()
		svc.ForgotPasswordFunc = func(ctx context.Context, email string) error {
			return domain.ErrEmailNotFound
		}
		h := NewAuthHandlers(svc)

		w := performJSON(t, h.ForgotPassword, EmailRequest{Email: "nobody@example.com"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["message"] != "Email not found" {
			t.Error("unexpected message")
		}
	})

	t.Run("reset password", func(t *testing.T) {
		svc := mocks.NewMockAuthService()
		h := NewAuthHandlers(svc)

		w := performJSON(t, h.ResetPassword, ResetPasswordRequest{Token: "reset-1", Password: "newpassword"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeBody(t, w)["message"] != "Password reset successfully" {
			t.Error("unexpected message")
		}
	})

	t.Run("reset password replayed token", func(t *testing.T) {
		svc := mocks.NewMockAuthService()
		svc.ResetPasswordFunc = func(ctx context.Context, token, newPassword string) error {
			return domain.ErrResetTokenInvalid
		}
		h := NewAuthHandlers(svc)

		w := performJSON(t, h.ResetPassword, ResetPasswordRequest{Token: "used", Password: "newpassword"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["message"] != "Invalid reset token" {
			t.Error("unexpected message")
		}
	})
}

func TestAuthHandlers_ResendFlows(t *testing.T) {
	t.Run("resend otp", func(t *testing.T) {
		svc := mocks.NewMockAuthService()
		h := NewAuthHandlers(svc)

		w := performJSON(t, h.ResendOTP, EmailRequest{Email: "alice@example.com"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeBody(t, w)["message"] != "New verification code sent to your email" {
			t.Error("unexpected message")
		}
	})

	t.Run("resend verification already verified", func(t *testing.T) {
		svc := mocks.NewMockAuthService()
		svc.ResendVerificationFunc = func(ctx context.Context, email string) error {
			return domain.ErrAlreadyVerified
		}
		h := NewAuthHandlers(svc)

		w := performJSON(t, h.ResendVerification, EmailRequest{Email: "alice@example.com"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["message"] != "Email is already verified" {
			t.Error("unexpected message")
		}
	})
}

func TestAuthHandlers_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("valid token", func(t *testing.T) {
		svc := mocks.NewMockAuthService()
		var receivedToken string
		svc.CurrentUserFunc = func(ctx context.Context, token string) (*domain.User, error) {
			receivedToken = token
			return &domain.User{ID: 1, Name: "Alice", Email: "alice@example.com", EmailVerified: true}, nil
		}
		h := NewAuthHandlers(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Set("token", "session-token")

		h.Me(c)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if receivedToken != "session-token" {
			t.Errorf("expected the middleware token to be forwarded, got %q", receivedToken)
		}
		body := decodeBody(t, w)
		if body["email"] != "alice@example.com" {
			t.Errorf("unexpected body %v", body)
		}
	})

	t.Run("expired session", func(t *testing.T) {
		svc := mocks.NewMockAuthService()
		svc.CurrentUserFunc = func(ctx context.Context, token string) (*domain.User, error) {
			return nil, domain.ErrTokenExpired
		}
		h := NewAuthHandlers(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Set("token", "stale")

		h.Me(c)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["message"] != "Invalid token" {
			t.Error("expired and invalid sessions must be indistinguishable")
		}
	})
}
