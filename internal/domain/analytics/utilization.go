package analytics

import (
	"math"
	"sort"

	"fleetdesk/internal/domain/interval"
	"fleetdesk/internal/domain/reservation"

	"github.com/google/uuid"
)

type CarUtilization struct {
	CarID                 uuid.UUID
	CarName               string
	DaysRented            int
	UtilizationPercentage int
	Revenue               reservation.Money
	ReservationCount      int
}

type UtilizationReport struct {
	Period      interval.Interval
	DaysInRange int
	Cars        []CarUtilization
	// FleetAverage is the mean of the per-car capped ratios before rounding.
	FleetAverage float64
	// FleetAverageRounded is the mean of the rounded per-car percentages.
	FleetAverageRounded float64
}

// Utilization reports every car in the snapshot, rented or not, sorted by
// percentage descending.
func Utilization(snap Snapshot, period interval.Interval) UtilizationReport {
	report := UtilizationReport{Period: period, Cars: []CarUtilization{}}
	if period.IsZero() {
		return report
	}
	report.DaysInRange = period.DurationDays()

	byCar := map[uuid.UUID][]*reservation.Reservation{}
	for _, r := range intersecting(snap.Reservations, period) {
		byCar[r.CarID()] = append(byCar[r.CarID()], r)
	}

	var preciseSum, roundedSum float64
	for _, c := range snap.Cars {
		if c == nil {
			continue
		}
		u := CarUtilization{CarID: c.ID(), CarName: c.DisplayName()}
		for _, r := range byCar[c.ID()] {
			u.Revenue = u.Revenue.Add(r.TotalAmount())
			u.ReservationCount++
			if !r.IsCancelled() {
				u.DaysRented += r.Period().DurationDays()
			}
		}
		ratio := math.Min(float64(u.DaysRented)/float64(report.DaysInRange)*100, 100)
		u.UtilizationPercentage = int(math.Round(ratio))
		preciseSum += ratio
		roundedSum += float64(u.UtilizationPercentage)
		report.Cars = append(report.Cars, u)
	}

	if n := len(report.Cars); n > 0 {
		report.FleetAverage = preciseSum / float64(n)
		report.FleetAverageRounded = roundedSum / float64(n)
	}

	sort.SliceStable(report.Cars, func(i, j int) bool {
		a, b := report.Cars[i], report.Cars[j]
		if a.UtilizationPercentage != b.UtilizationPercentage {
			return a.UtilizationPercentage > b.UtilizationPercentage
		}
		return a.CarID.String() < b.CarID.String()
	})
	return report
}
