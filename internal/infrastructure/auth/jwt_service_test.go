package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mahir-soa/FYP/domain"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestJWTServiceImpl_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService(testSecret, "fyp-backend", time.Hour)

	token, err := svc.Generate(42, "alice@example.com", "Alice")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("expected subject email, got %s", claims.Email)
	}
	if claims.Name != "Alice" {
		t.Errorf("expected name Alice, got %s", claims.Name)
	}
	if claims.ExpiresAt-claims.IssuedAt != int64(time.Hour.Seconds()) {
		t.Errorf("expected a 1h lifetime, got %d seconds", claims.ExpiresAt-claims.IssuedAt)
	}
}

func TestJWTServiceImpl_Validate_Expired(t *testing.T) {
	svc := NewJWTService(testSecret, "fyp-backend", -time.Minute)

	token, err := svc.Generate(1, "alice@example.com", "Alice")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = svc.Validate(token)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTServiceImpl_Validate_WrongSecret(t *testing.T) {
	issuer := NewJWTService(testSecret, "fyp-backend", time.Hour)
	verifier := NewJWTService("a-different-secret", "fyp-backend", time.Hour)

	token, err := issuer.Generate(1, "alice@example.com", "Alice")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = verifier.Validate(token)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTServiceImpl_Validate_Garbage(t *testing.T) {
	svc := NewJWTService(testSecret, "fyp-backend", time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Errorf("token %q: expected ErrTokenInvalid, got %v", token, err)
		}
	}
}

func TestJWTServiceImpl_Validate_RejectsUnsignedAlg(t *testing.T) {
	svc := NewJWTService(testSecret, "fyp-backend", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":     "alice@example.com",
		"user_id": float64(1),
		"name":    "Alice",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}

	if _, err := svc.Validate(token); err == nil {
		t.Fatal("unsigned token must be rejected")
	}
}

func TestJWTServiceImpl_Validate_MissingClaims(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	svc := NewJWTService(testSecret, "fyp-backend", time.Hour)
	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}
