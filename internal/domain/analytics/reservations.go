package analytics

import (
	"sort"
	"time"

	"fleetdesk/internal/domain/reservation"

	"github.com/google/uuid"
)

const DefaultTopN = 5

type MonthlyCount struct {
	Month time.Month
	Count int
}

type Ranked struct {
	ID    uuid.UUID
	Name  string
	Count int
}

type ReservationAnalytics struct {
	Year               int
	Monthly            []MonthlyCount
	StatusDistribution map[reservation.Status]int
	PopularCars        []Ranked
	TopClients         []Ranked
}

// Reservations covers the bookings starting in year (in loc). Monthly always
// has twelve entries, January first; the distribution always has every status.
func Reservations(snap Snapshot, year, topN int, loc *time.Location) ReservationAnalytics {
	if loc == nil {
		loc = time.UTC
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	dir := newDirectory(snap)

	out := ReservationAnalytics{
		Year:               year,
		Monthly:            make([]MonthlyCount, 12),
		StatusDistribution: zeroStatusCounts(),
	}
	for i := range out.Monthly {
		out.Monthly[i].Month = time.Month(i + 1)
	}

	carCounts := map[uuid.UUID]int{}
	clientCounts := map[uuid.UUID]int{}
	for _, r := range snap.Reservations {
		if r == nil {
			continue
		}
		start := r.Start().In(loc)
		if start.Year() != year {
			continue
		}
		out.Monthly[start.Month()-1].Count++
		out.StatusDistribution[r.Status()]++
		carCounts[r.CarID()]++
		clientCounts[r.ClientID()]++
	}

	out.PopularCars = rank(carCounts, dir.carName, topN)
	out.TopClients = rank(clientCounts, dir.clientName, topN)
	return out
}

// rank orders by count descending, then by identifier for a stable result.
func rank(counts map[uuid.UUID]int, name func(uuid.UUID) string, topN int) []Ranked {
	ranked := make([]Ranked, 0, len(counts))
	for id, n := range counts {
		ranked = append(ranked, Ranked{ID: id, Name: name(id), Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].ID.String() < ranked[j].ID.String()
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
