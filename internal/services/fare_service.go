package services

import (
	"context"
	"strings"

	"github.com/mahir-soa/FYP/domain"
)

// Flat bus fare used when the fare table has no bus row.
const defaultBusFare = 1.75

// FareServiceImpl implements domain.FareService over the seeded fare table
type FareServiceImpl struct {
	fareRepo domain.FareRepository
}

// NewFareService creates a new fare service
func NewFareService(fareRepo domain.FareRepository) domain.FareService {
	return &FareServiceImpl{fareRepo: fareRepo}
}

// CalculateFare implements domain.FareService. Bus journeys are a flat fare
// regardless of zones. Train journeys look up the normalised (min,max) zone
// pair, falling back to a zone-spread estimate when no row matches. The
// second return value reports whether a fare could be computed at all.
func (s *FareServiceImpl) CalculateFare(ctx context.Context, transportType string, fromZone, toZone *int, isPeak bool) (float64, bool, error) {
	if strings.EqualFold(transportType, "Bus") {
		fare, err := s.fareRepo.FindByTransportType(ctx, "Bus")
		if err != nil {
			if err == domain.ErrFareNotFound {
				return defaultBusFare, true, nil
			}
			return 0, false, err
		}
		return fare.PeakFare, true, nil
	}

	if fromZone == nil || toZone == nil {
		return 0, false, nil
	}

	minZone, maxZone := *fromZone, *toZone
	if minZone > maxZone {
		minZone, maxZone = maxZone, minZone
	}

	fare, err := s.fareRepo.FindByZones(ctx, "Train", minZone, maxZone)
	if err != nil {
		if err == domain.ErrFareNotFound {
			return fallbackFare(minZone, maxZone, isPeak), true, nil
		}
		return 0, false, err
	}

	if isPeak {
		return fare.PeakFare, true, nil
	}
	return fare.OffPeakFare, true, nil
}

// fallbackFare estimates a train fare from the zone spread when the exact
// route is missing from the table.
func fallbackFare(minZone, maxZone int, isPeak bool) float64 {
	spread := maxZone - minZone

	if minZone == 1 {
		peak := []float64{2.80, 3.40, 3.70, 4.40, 5.10, 5.60}
		offPeak := []float64{2.70, 2.80, 3.00, 3.20, 3.50, 3.60}
		if spread > 5 {
			spread = 5
		}
		if isPeak {
			return peak[spread]
		}
		return offPeak[spread]
	}

	if isPeak {
		return 2.10
	}
	return 1.90
}
