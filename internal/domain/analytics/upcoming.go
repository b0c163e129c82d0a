package analytics

import (
	"sort"
	"time"

	"fleetdesk/internal/domain/interval"
	"fleetdesk/internal/domain/reservation"
)

const DefaultHorizon = 7 * 24 * time.Hour

type OverdueReturn struct {
	ReservationRef
	DaysOverdue int
}

type UpcomingEvents struct {
	Now             time.Time
	Horizon         time.Duration
	UpcomingPickups []ReservationRef
	UpcomingReturns []ReservationRef
	OverdueReturns  []OverdueReturn
}

// Upcoming classifies reservations against now. The window is [now, now+horizon).
// A zero now yields empty lists.
func Upcoming(snap Snapshot, now time.Time, horizon time.Duration) UpcomingEvents {
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	out := UpcomingEvents{
		Now:             now,
		Horizon:         horizon,
		UpcomingPickups: []ReservationRef{},
		UpcomingReturns: []ReservationRef{},
		OverdueReturns:  []OverdueReturn{},
	}
	window, err := interval.New(now, now.Add(horizon))
	if err != nil {
		return out
	}
	dir := newDirectory(snap)

	var pickups, returns []*reservation.Reservation
	for _, r := range snap.Reservations {
		if r == nil {
			continue
		}
		if window.Includes(r.Start()) {
			pickups = append(pickups, r)
		}
		if window.Includes(r.End()) && !r.Status().IsTerminal() {
			returns = append(returns, r)
		}
		if r.IsOverdue(now) {
			out.OverdueReturns = append(out.OverdueReturns, OverdueReturn{
				ReservationRef: dir.ref(r),
				DaysOverdue:    int(now.Sub(r.End()) / (24 * time.Hour)),
			})
		}
	}

	sortByStart(pickups)
	for _, r := range pickups {
		out.UpcomingPickups = append(out.UpcomingPickups, dir.ref(r))
	}

	sort.SliceStable(returns, func(i, j int) bool {
		if !returns[i].End().Equal(returns[j].End()) {
			return returns[i].End().Before(returns[j].End())
		}
		return returns[i].ID().String() < returns[j].ID().String()
	})
	for _, r := range returns {
		out.UpcomingReturns = append(out.UpcomingReturns, dir.ref(r))
	}

	sort.SliceStable(out.OverdueReturns, func(i, j int) bool {
		a, b := out.OverdueReturns[i], out.OverdueReturns[j]
		if a.DaysOverdue != b.DaysOverdue {
			return a.DaysOverdue > b.DaysOverdue
		}
		return a.ReservationID.String() < b.ReservationID.String()
	})
	return out
}
