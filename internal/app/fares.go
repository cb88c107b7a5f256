package app

import (
	"context"
	"log"

	"github.com/mahir-soa/FYP/domain"
)

type fareSeed struct {
	transportType string
	fromZone      *int
	toZone        *int
	peak          float64
	offPeak       float64
}

func zone(z int) *int { return &z }

// 2024 Oyster/Contactless single fares, plus the flat bus fare.
var fareSeeds = []fareSeed{
	{"Bus", nil, nil, 1.75, 1.75},

	{"Train", zone(1), zone(1), 2.80, 2.70},
	{"Train", zone(1), zone(2), 3.40, 2.80},
	{"Train", zone(1), zone(3), 3.70, 3.00},
	{"Train", zone(1), zone(4), 4.40, 3.20},
	{"Train", zone(1), zone(5), 5.10, 3.50},
	{"Train", zone(1), zone(6), 5.60, 3.60},

	{"Train", zone(2), zone(2), 2.10, 1.90},
	{"Train", zone(2), zone(3), 2.10, 1.90},
	{"Train", zone(2), zone(4), 2.40, 2.10},
	{"Train", zone(2), zone(5), 2.80, 2.30},
	{"Train", zone(2), zone(6), 3.10, 2.60},

	{"Train", zone(3), zone(3), 2.10, 1.90},
	{"Train", zone(3), zone(4), 2.10, 1.90},
	{"Train", zone(3), zone(5), 2.10, 1.90},
	{"Train", zone(3), zone(6), 2.60, 2.10},

	{"Train", zone(4), zone(4), 2.10, 1.90},
	{"Train", zone(4), zone(5), 2.10, 1.90},
	{"Train", zone(4), zone(6), 2.10, 1.90},

	{"Train", zone(5), zone(5), 2.10, 1.90},
	{"Train", zone(5), zone(6), 2.10, 1.90},

	{"Train", zone(6), zone(6), 2.10, 1.90},
}

// seedFares populates the fare table on first boot. A non-empty table is
// left untouched.
func seedFares(ctx context.Context, repo domain.FareRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, seed := range fareSeeds {
		fare := &domain.Fare{
			TransportType: seed.transportType,
			FromZone:      seed.fromZone,
			ToZone:        seed.toZone,
			PeakFare:      seed.peak,
			OffPeakFare:   seed.offPeak,
		}
		if err := repo.Create(ctx, fare); err != nil {
			return err
		}
	}

	log.Printf("fare table seeded with %d fare rules", len(fareSeeds))
	return nil
}
