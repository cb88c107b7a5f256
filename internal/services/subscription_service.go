package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mahir-soa/FYP/domain"
)

const dateLayout = "2006-01-02"

// SubscriptionServiceImpl implements domain.SubscriptionService
type SubscriptionServiceImpl struct {
	subRepo domain.SubscriptionRepository

	now func() time.Time
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(subRepo domain.SubscriptionRepository) *SubscriptionServiceImpl {
	return &SubscriptionServiceImpl{subRepo: subRepo, now: time.Now}
}

// Upcoming implements domain.SubscriptionService: active subscriptions with
// a next payment date within [today, today+days]. Unparseable dates are
// skipped rather than failing the whole listing.
func (s *SubscriptionServiceImpl) Upcoming(ctx context.Context, days int) ([]domain.Subscription, error) {
	subs, err := s.subRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	today := s.today()
	limit := today.AddDate(0, 0, days)

	upcoming := make([]domain.Subscription, 0)
	for _, sub := range subs {
		if sub.Status != domain.SubscriptionActive || sub.NextPaymentDate == "" {
			continue
		}
		payment, err := time.Parse(dateLayout, sub.NextPaymentDate)
		if err != nil {
			continue
		}
		if !payment.Before(today) && !payment.After(limit) {
			upcoming = append(upcoming, sub)
		}
	}
	return upcoming, nil
}

// Inactive implements domain.SubscriptionService: active subscriptions not
// used for at least the given number of days. Never-used subscriptions and
// unparseable dates count as inactive.
func (s *SubscriptionServiceImpl) Inactive(ctx context.Context, days int) ([]domain.Subscription, error) {
	subs, err := s.subRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	today := s.today()

	inactive := make([]domain.Subscription, 0)
	for _, sub := range subs {
		if sub.Status != domain.SubscriptionActive {
			continue
		}
		if sub.LastUsedDate == "" {
			inactive = append(inactive, sub)
			continue
		}
		lastUsed, err := time.Parse(dateLayout, sub.LastUsedDate)
		if err != nil {
			inactive = append(inactive, sub)
			continue
		}
		if int(today.Sub(lastUsed).Hours()/24) >= days {
			inactive = append(inactive, sub)
		}
	}
	return inactive, nil
}

// MarkUsed implements domain.SubscriptionService, stamping today's date
func (s *SubscriptionServiceImpl) MarkUsed(ctx context.Context, id uint) (*domain.Subscription, error) {
	sub, err := s.subRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sub.LastUsedDate = s.now().Format(dateLayout)
	if err := s.subRepo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}
	return sub, nil
}

// Cancel implements domain.SubscriptionService
func (s *SubscriptionServiceImpl) Cancel(ctx context.Context, id uint) (*domain.Subscription, error) {
	sub, err := s.subRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sub.Status = domain.SubscriptionCancelled
	if err := s.subRepo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}
	return sub, nil
}

func (s *SubscriptionServiceImpl) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Compile-time interface compliance verification
var _ domain.SubscriptionService = (*SubscriptionServiceImpl)(nil)
