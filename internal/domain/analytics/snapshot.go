// Package analytics derives the dashboard views from a snapshot of cars,
// clients and reservations. Every function is pure and total: an empty
// snapshot yields zero-valued aggregates.
package analytics

import (
	"sort"

	"fleetdesk/internal/domain/car"
	"fleetdesk/internal/domain/client"
	"fleetdesk/internal/domain/interval"
	"fleetdesk/internal/domain/reservation"

	"github.com/google/uuid"
)

const (
	unknownCar    = "Unknown car"
	unknownClient = "Unknown client"
)

type Snapshot struct {
	Cars         []*car.Car
	Clients      []*client.Client
	Reservations []*reservation.Reservation
}

// ReservationRef is a reservation annotated with display names.
type ReservationRef struct {
	ReservationID uuid.UUID
	CarID         uuid.UUID
	CarName       string
	ClientID      uuid.UUID
	ClientName    string
	Period        interval.Interval
	Status        reservation.Status
	PaymentStatus reservation.PaymentStatus
	TotalAmount   reservation.Money
	Deposit       reservation.Money
}

type directory struct {
	cars    map[uuid.UUID]*car.Car
	clients map[uuid.UUID]*client.Client
}

func newDirectory(snap Snapshot) directory {
	d := directory{
		cars:    make(map[uuid.UUID]*car.Car, len(snap.Cars)),
		clients: make(map[uuid.UUID]*client.Client, len(snap.Clients)),
	}
	for _, c := range snap.Cars {
		if c != nil {
			d.cars[c.ID()] = c
		}
	}
	for _, c := range snap.Clients {
		if c != nil {
			d.clients[c.ID()] = c
		}
	}
	return d
}

func (d directory) carName(id uuid.UUID) string {
	if c, ok := d.cars[id]; ok {
		return c.DisplayName()
	}
	return unknownCar
}

func (d directory) clientName(id uuid.UUID) string {
	if c, ok := d.clients[id]; ok {
		return c.DisplayName()
	}
	return unknownClient
}

func (d directory) ref(r *reservation.Reservation) ReservationRef {
	return ReservationRef{
		ReservationID: r.ID(),
		CarID:         r.CarID(),
		CarName:       d.carName(r.CarID()),
		ClientID:      r.ClientID(),
		ClientName:    d.clientName(r.ClientID()),
		Period:        r.Period(),
		Status:        r.Status(),
		PaymentStatus: r.PaymentStatus(),
		TotalAmount:   r.TotalAmount(),
		Deposit:       r.Deposit(),
	}
}

// intersecting keeps the non-nil reservations whose period overlaps p.
func intersecting(rs []*reservation.Reservation, p interval.Interval) []*reservation.Reservation {
	out := make([]*reservation.Reservation, 0, len(rs))
	for _, r := range rs {
		if r != nil && r.Period().Overlaps(p) {
			out = append(out, r)
		}
	}
	return out
}

func sortByStart(rs []*reservation.Reservation) {
	sort.SliceStable(rs, func(i, j int) bool {
		if !rs[i].Start().Equal(rs[j].Start()) {
			return rs[i].Start().Before(rs[j].Start())
		}
		return rs[i].ID().String() < rs[j].ID().String()
	})
}

func zeroStatusCounts() map[reservation.Status]int {
	m := make(map[reservation.Status]int, len(reservation.Statuses))
	for _, s := range reservation.Statuses {
		m[s] = 0
	}
	return m
}
