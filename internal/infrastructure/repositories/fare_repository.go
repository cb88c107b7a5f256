package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/mahir-soa/FYP/domain"
)

// FareRepositoryImpl implements domain.FareRepository using GORM
type FareRepositoryImpl struct {
	db *gorm.DB
}

// DBFare represents the database model for a fare table row
type DBFare struct {
	ID            uint   `gorm:"primaryKey"`
	TransportType string `gorm:"size:16;index"`
	FromZone      *int
	ToZone        *int
	PeakFare      float64
	OffPeakFare   float64
}

// TableName returns the table name for GORM
func (DBFare) TableName() string {
	return "tfl_fares"
}

// NewFareRepository creates a new fare repository
func NewFareRepository(db *gorm.DB) domain.FareRepository {
	return &FareRepositoryImpl{db: db}
}

// Count implements domain.FareRepository
func (r *FareRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBFare{}).Count(&count).Error
	return count, err
}

// Create implements domain.FareRepository
func (r *FareRepositoryImpl) Create(ctx context.Context, fare *domain.Fare) error {
	dbFare := &DBFare{
		TransportType: fare.TransportType,
		FromZone:      fare.FromZone,
		ToZone:        fare.ToZone,
		PeakFare:      fare.PeakFare,
		OffPeakFare:   fare.OffPeakFare,
	}
	if err := r.db.WithContext(ctx).Create(dbFare).Error; err != nil {
		return err
	}
	fare.ID = dbFare.ID
	return nil
}

// FindByTransportType implements domain.FareRepository
func (r *FareRepositoryImpl) FindByTransportType(ctx context.Context, transportType string) (*domain.Fare, error) {
	var dbFare DBFare
	err := r.db.WithContext(ctx).Where("transport_type = ?", transportType).First(&dbFare).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrFareNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbFare), nil
}

// FindByZones implements domain.FareRepository
func (r *FareRepositoryImpl) FindByZones(ctx context.Context, transportType string, fromZone, toZone int) (*domain.Fare, error) {
	var dbFare DBFare
	err := r.db.WithContext(ctx).
		Where("transport_type = ? AND from_zone = ? AND to_zone = ?", transportType, fromZone, toZone).
		First(&dbFare).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrFareNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbFare), nil
}

func (r *FareRepositoryImpl) dbToDomain(f *DBFare) *domain.Fare {
	return &domain.Fare{
		ID:            f.ID,
		TransportType: f.TransportType,
		FromZone:      f.FromZone,
		ToZone:        f.ToZone,
		PeakFare:      f.PeakFare,
		OffPeakFare:   f.OffPeakFare,
	}
}
