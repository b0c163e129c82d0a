package analytics

import (
	"fleetdesk/internal/domain/interval"
	"fleetdesk/internal/domain/reservation"
)

type DashboardMetrics struct {
	Period              interval.Interval
	TotalCars           int
	AvailableCars       int
	TotalClients        int
	ActiveReservations  int
	PendingReservations int
	TotalRevenue        reservation.Money
}

// Dashboard counts confirmed and active bookings as active across the whole
// snapshot; revenue only covers reservations intersecting period.
func Dashboard(snap Snapshot, period interval.Interval) DashboardMetrics {
	m := DashboardMetrics{Period: period}

	for _, c := range snap.Cars {
		if c == nil {
			continue
		}
		m.TotalCars++
		if c.IsAvailable() {
			m.AvailableCars++
		}
	}
	for _, c := range snap.Clients {
		if c != nil {
			m.TotalClients++
		}
	}

	for _, r := range snap.Reservations {
		if r == nil {
			continue
		}
		switch r.Status() {
		case reservation.StatusConfirmed, reservation.StatusActive:
			m.ActiveReservations++
		case reservation.StatusPending:
			m.PendingReservations++
		}
	}

	for _, r := range intersecting(snap.Reservations, period) {
		m.TotalRevenue = m.TotalRevenue.Add(r.TotalAmount())
	}
	return m
}
