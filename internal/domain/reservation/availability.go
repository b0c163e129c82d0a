package reservation

import (
	"sort"

	"fleetdesk/internal/domain/interval"

	"github.com/google/uuid"
)

const (
	MessageAvailable   = "Car is available for the selected dates"
	MessageUnavailable = "Car is not available for the selected dates"
)

// CarRate is the slice of a car the availability check needs.
type CarRate struct {
	ID        uuid.UUID
	DailyRate Money
}

type Pricing struct {
	DailyRate   Money
	TotalDays   int
	TotalAmount Money
}

type Conflict struct {
	ReservationID uuid.UUID
	Period        interval.Interval
	Status        Status
}

// AvailabilityResult is a normal value in both outcomes; a conflict is not an error.
type AvailabilityResult struct {
	Available bool
	Message   string
	Pricing   *Pricing
	Conflicts []Conflict
}

func QuotePrice(rate Money, period interval.Interval) Pricing {
	days := period.DurationDays()
	return Pricing{
		DailyRate:   rate,
		TotalDays:   days,
		TotalAmount: rate.Times(days),
	}
}

// CheckAvailability tests the candidate against every non-cancelled reservation
// of the same car. Reservations of other cars in existing are ignored.
func CheckAvailability(car CarRate, candidate interval.Interval, existing []*Reservation) AvailabilityResult {
	var conflicts []Conflict
	for _, r := range existing {
		if r == nil || r.CarID() != car.ID || r.IsCancelled() {
			continue
		}
		if interval.Overlaps(candidate, r.Period()) {
			conflicts = append(conflicts, Conflict{
				ReservationID: r.ID(),
				Period:        r.Period(),
				Status:        r.Status(),
			})
		}
	}

	if len(conflicts) > 0 {
		sort.SliceStable(conflicts, func(i, j int) bool {
			a, b := conflicts[i], conflicts[j]
			if !a.Period.Start().Equal(b.Period.Start()) {
				return a.Period.Start().Before(b.Period.Start())
			}
			return a.ReservationID.String() < b.ReservationID.String()
		})
		return AvailabilityResult{
			Available: false,
			Message:   MessageUnavailable,
			Conflicts: conflicts,
		}
	}

	pricing := QuotePrice(car.DailyRate, candidate)
	return AvailabilityResult{
		Available: true,
		Message:   MessageAvailable,
		Pricing:   &pricing,
	}
}
