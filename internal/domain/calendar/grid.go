package calendar

import (
	"sort"
	"time"

	"fleetdesk/internal/domain/interval"
	"fleetdesk/internal/domain/reservation"
	"fleetdesk/internal/pkg/clock"

	"github.com/google/uuid"
)

// CellCount is six weeks of seven days, independent of month length.
const CellCount = 42

// Entry is a reservation already resolved to a display title.
type Entry struct {
	ReservationID uuid.UUID
	Title         string
	CarID         uuid.UUID
	ClientID      uuid.UUID
	Period        interval.Interval
	Status        reservation.Status
}

type Event struct {
	ReservationID uuid.UUID
	Title         string
	CarID         uuid.UUID
	ClientID      uuid.UUID
	Start         time.Time
	End           time.Time
	Status        reservation.Status
	Style         Style
}

type Cell struct {
	Date           time.Time
	IsToday        bool
	IsCurrentMonth bool
	Events         []Event
}

type Grid struct {
	Year  int
	Month time.Month
	Cells []Cell
}

// Window is the range whose reservations can show up on the month grid:
// the first day of the previous month up to the first day of month+2.
func Window(year int, month time.Month, loc *time.Location) interval.Interval {
	if loc == nil {
		loc = time.UTC
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return interval.MustNew(first.AddDate(0, -1, 0), first.AddDate(0, 2, 0))
}

// FirstCell is the Sunday on or before the first of the month.
func FirstCell(year int, month time.Month, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return first.AddDate(0, 0, -int(first.Weekday()))
}

// Project lays entries onto the 42-cell grid. A reservation appears on every
// day from its start day through its end day, both inclusive.
func Project(year int, month time.Month, today time.Time, loc *time.Location, entries []Entry) Grid {
	if loc == nil {
		loc = time.UTC
	}
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.Period.Start().Equal(b.Period.Start()) {
			return a.Period.Start().Before(b.Period.Start())
		}
		return a.ReservationID.String() < b.ReservationID.String()
	})

	start := FirstCell(year, month, loc)
	cells := make([]Cell, CellCount)
	for i := range cells {
		date := start.AddDate(0, 0, i)
		cell := Cell{
			Date:           date,
			IsToday:        clock.SameDay(date, today, loc),
			IsCurrentMonth: date.Month() == month && date.Year() == year,
			Events:         []Event{},
		}
		for _, e := range sorted {
			if e.Period.ContainsDay(date, loc) {
				cell.Events = append(cell.Events, toEvent(e))
			}
		}
		cells[i] = cell
	}

	return Grid{Year: year, Month: month, Cells: cells}
}

func toEvent(e Entry) Event {
	return Event{
		ReservationID: e.ReservationID,
		Title:         e.Title,
		CarID:         e.CarID,
		ClientID:      e.ClientID,
		Start:         e.Period.Start(),
		End:           e.Period.End(),
		Status:        e.Status,
		Style:         StyleFor(e.Status),
	}
}
