package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mahir-soa/FYP/domain"
)

// cleanupTTL bounds how long an abandoned pending registration survives.
// It is deliberately much longer than the OTP window so in-window lookups
// always find the record and report expiry instead of absence.
const cleanupTTL = 24 * time.Hour

// PendingRepositoryImpl implements domain.PendingRegistrationRepository
// using Redis. One key per email gives replace-on-write semantics for
// repeated registration attempts.
type PendingRepositoryImpl struct {
	client *redis.Client
}

// NewPendingRepository creates a new redis-backed pending registration store
func NewPendingRepository(client *redis.Client) domain.PendingRegistrationRepository {
	return &PendingRepositoryImpl{client: client}
}

func pendingKey(email string) string {
	return "pending:" + email
}

// Save implements domain.PendingRegistrationRepository. A plain SET replaces
// any prior record for the email, so concurrent registrations for the same
// address are last-writer-wins.
func (r *PendingRepositoryImpl) Save(ctx context.Context, pending *domain.PendingRegistration) error {
	payload, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("failed to marshal pending registration: %w", err)
	}
	if err := r.client.Set(ctx, pendingKey(pending.Email), payload, cleanupTTL).Err(); err != nil {
		return fmt.Errorf("failed to store pending registration: %w", err)
	}
	return nil
}

// FindByEmail implements domain.PendingRegistrationRepository
func (r *PendingRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.PendingRegistration, error) {
	payload, err := r.client.Get(ctx, pendingKey(email)).Result()
	if err == redis.Nil {
		return nil, domain.ErrPendingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read pending registration: %w", err)
	}

	var pending domain.PendingRegistration
	if err := json.Unmarshal([]byte(payload), &pending); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending registration: %w", err)
	}
	return &pending, nil
}

// DeleteByEmail implements domain.PendingRegistrationRepository. Deleting a
// missing record is not an error.
func (r *PendingRepositoryImpl) DeleteByEmail(ctx context.Context, email string) error {
	return r.client.Del(ctx, pendingKey(email)).Err()
}
