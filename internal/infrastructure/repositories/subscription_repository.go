package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/mahir-soa/FYP/domain"
)

// SubscriptionRepositoryImpl implements domain.SubscriptionRepository using GORM
type SubscriptionRepositoryImpl struct {
	db *gorm.DB
}

// DBSubscription represents the database model for Subscription
type DBSubscription struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"size:255"`
	Cost            float64
	BillingCycle    string `gorm:"size:16"`
	NextPaymentDate string `gorm:"size:10"`
	LastUsedDate    string `gorm:"size:10"`
	Status          string `gorm:"size:16;index"`
	ProviderKey     string `gorm:"size:64"`
	Category        string `gorm:"size:32"`
}

// TableName returns the table name for GORM
func (DBSubscription) TableName() string {
	return "subscriptions"
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) domain.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{db: db}
}

// FindAll implements domain.SubscriptionRepository
func (r *SubscriptionRepositoryImpl) FindAll(ctx context.Context) ([]domain.Subscription, error) {
	var dbSubs []DBSubscription
	if err := r.db.WithContext(ctx).Find(&dbSubs).Error; err != nil {
		return nil, err
	}
	subs := make([]domain.Subscription, 0, len(dbSubs))
	for i := range dbSubs {
		subs = append(subs, *r.dbToDomain(&dbSubs[i]))
	}
	return subs, nil
}

// FindByID implements domain.SubscriptionRepository
func (r *SubscriptionRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Subscription, error) {
	var dbSub DBSubscription
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbSub).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrSubscriptionNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbSub), nil
}

// Create implements domain.SubscriptionRepository
func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *domain.Subscription) error {
	dbSub := r.domainToDB(sub)
	if err := r.db.WithContext(ctx).Create(dbSub).Error; err != nil {
		return err
	}
	sub.ID = dbSub.ID
	return nil
}

// Update implements domain.SubscriptionRepository
func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, sub *domain.Subscription) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(sub)).Error
}

// Delete implements domain.SubscriptionRepository
func (r *SubscriptionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&DBSubscription{}, id).Error
}

func (r *SubscriptionRepositoryImpl) domainToDB(s *domain.Subscription) *DBSubscription {
	return &DBSubscription{
		ID:              s.ID,
		Name:            s.Name,
		Cost:            s.Cost,
		BillingCycle:    s.BillingCycle,
		NextPaymentDate: s.NextPaymentDate,
		LastUsedDate:    s.LastUsedDate,
		Status:          s.Status,
		ProviderKey:     s.ProviderKey,
		Category:        s.Category,
	}
}

func (r *SubscriptionRepositoryImpl) dbToDomain(s *DBSubscription) *domain.Subscription {
	return &domain.Subscription{
		ID:              s.ID,
		Name:            s.Name,
		Cost:            s.Cost,
		BillingCycle:    s.BillingCycle,
		NextPaymentDate: s.NextPaymentDate,
		LastUsedDate:    s.LastUsedDate,
		Status:          s.Status,
		ProviderKey:     s.ProviderKey,
		Category:        s.Category,
	}
}
