package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"github.com/mahir-soa/FYP/domain"
)

// SecretGeneratorImpl implements domain.SecretGenerator
type SecretGeneratorImpl struct{}

// NewSecretGenerator creates a new secret generator
func NewSecretGenerator() domain.SecretGenerator {
	return &SecretGeneratorImpl{}
}

// OTP returns a uniformly distributed 6-digit code in [100000, 999999]
func (g *SecretGeneratorImpl) OTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%d", 100000+n.Int64()), nil
}

// OpaqueToken returns an unguessable token for verification and reset links
func (g *SecretGeneratorImpl) OpaqueToken() string {
	return uuid.NewString()
}
