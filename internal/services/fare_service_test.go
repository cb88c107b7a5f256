package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mahir-soa/FYP/domain"
	"github.com/mahir-soa/FYP/internal/mocks"
)

func zone(z int) *int { return &z }

func seededFareRepo() *mocks.MockFareRepository {
	repo := mocks.NewMockFareRepository()
	repo.FindByTransportTypeFunc = func(ctx context.Context, transportType string) (*domain.Fare, error) {
		if transportType == "Bus" {
			return &domain.Fare{TransportType: "Bus", PeakFare: 1.75, OffPeakFare: 1.75}, nil
		}
		return nil, domain.ErrFareNotFound
	}
	repo.FindByZonesFunc = func(ctx context.Context, transportType string, fromZone, toZone int) (*domain.Fare, error) {
		if transportType == "Train" && fromZone == 1 && toZone == 3 {
			return &domain.Fare{TransportType: "Train", FromZone: zone(1), ToZone: zone(3), PeakFare: 3.70, OffPeakFare: 3.00}, nil
		}
		return nil, domain.ErrFareNotFound
	}
	return repo
}

func TestFareServiceImpl_CalculateFare(t *testing.T) {
	tests := []struct {
		name          string
		transportType string
		fromZone      *int
		toZone        *int
		isPeak        bool
		wantFare      float64
		wantOK        bool
	}{
		{
			name:          "bus is a flat fare",
			transportType: "Bus",
			isPeak:        true,
			wantFare:      1.75,
			wantOK:        true,
		},
		{
			name:          "bus ignores zones",
			transportType: "bus",
			fromZone:      zone(1),
			toZone:        zone(6),
			wantFare:      1.75,
			wantOK:        true,
		},
		{
			name:          "train peak fare from the table",
			transportType: "Train",
			fromZone:      zone(1),
			toZone:        zone(3),
			isPeak:        true,
			wantFare:      3.70,
			wantOK:        true,
		},
		{
			name:          "train off-peak fare from the table",
			transportType: "Train",
			fromZone:      zone(1),
			toZone:        zone(3),
			wantFare:      3.00,
			wantOK:        true,
		},
		{
			name:          "zones are normalised before lookup",
			transportType: "Train",
			fromZone:      zone(3),
			toZone:        zone(1),
			isPeak:        true,
			wantFare:      3.70,
			wantOK:        true,
		},
		{
			name:          "train without zones cannot be priced",
			transportType: "Train",
			wantFare:      0,
			wantOK:        false,
		},
		{
			name:          "train with one missing zone cannot be priced",
			transportType: "Train",
			fromZone:      zone(2),
			wantFare:      0,
			wantOK:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewFareService(seededFareRepo())

			fare, ok, err := svc.CalculateFare(context.Background(), tt.transportType, tt.fromZone, tt.toZone, tt.isPeak)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if fare != tt.wantFare {
				t.Errorf("expected fare %.2f, got %.2f", tt.wantFare, fare)
			}
		})
	}
}

func TestFareServiceImpl_CalculateFare_Fallbacks(t *testing.T) {
	// Empty table: every lookup misses and estimates kick in.
	svc := NewFareService(mocks.NewMockFareRepository())

	tests := []struct {
		name     string
		fromZone int
		toZone   int
		isPeak   bool
		want     float64
	}{
		{"zone 1 origin uses the zone-1 scale", 1, 4, true, 4.40},
		{"zone 1 origin off-peak", 1, 4, false, 3.20},
		{"zone 1 spread capped at five zones", 1, 9, true, 5.60},
		{"outer zone peak", 3, 5, true, 2.10},
		{"outer zone off-peak", 4, 6, false, 1.90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fare, ok, err := svc.CalculateFare(context.Background(), "Train", zone(tt.fromZone), zone(tt.toZone), tt.isPeak)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !ok {
				t.Fatal("expected an estimated fare")
			}
			if fare != tt.want {
				t.Errorf("expected fare %.2f, got %.2f", tt.want, fare)
			}
		})
	}
}

func TestFareServiceImpl_CalculateFare_BusDefaultWhenUnseeded(t *testing.T) {
	svc := NewFareService(mocks.NewMockFareRepository())

	fare, ok, err := svc.CalculateFare(context.Background(), "Bus", nil, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || fare != 1.75 {
		t.Errorf("expected default bus fare 1.75, got %.2f ok=%v", fare, ok)
	}
}

func TestFareServiceImpl_CalculateFare_RepoError(t *testing.T) {
	repo := mocks.NewMockFareRepository()
	repo.FindByZonesFunc = func(ctx context.Context, transportType string, fromZone, toZone int) (*domain.Fare, error) {
		return nil, errors.New("db down")
	}
	svc := NewFareService(repo)

	_, _, err := svc.CalculateFare(context.Background(), "Train", zone(1), zone(2), true)
	if err == nil {
		t.Fatal("expected the repository error to propagate")
	}
}
