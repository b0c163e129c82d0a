package queries

import (
	"context"
	"time"

	"fleetdesk/internal/domain/calendar"
	"fleetdesk/internal/pkg/clock"
	"fleetdesk/internal/pkg/errs"
	"fleetdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidMonth = errs.Mark(errs.New("month must be between 1 and 12"), errs.ErrValidation)

type CalendarQueries interface {
	Month(ctx context.Context, session shared.Session, year int, month time.Month) (calendar.Grid, error)
}

type calendarQueriesImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	settings Settings
}

func NewCalendarQueries(uow shared.UnitOfWork, clk clock.Clock, settings Settings) CalendarQueries {
	return &calendarQueriesImpl{uow: uow, clock: clk, settings: settings}
}

func (q *calendarQueriesImpl) Month(ctx context.Context, _ shared.Session, year int, month time.Month) (calendar.Grid, error) {
	if month < time.January || month > time.December {
		return calendar.Grid{}, ErrInvalidMonth
	}
	if year < 1 {
		return calendar.Grid{}, errs.Mark(errs.Newf("invalid year %d", year), errs.ErrValidation)
	}
	loc := q.settings.location()
	window := calendar.Window(year, month, loc)

	var entries []calendar.Entry
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		rs, err := r.Reservations().FindIntersecting(ctx, window)
		if err != nil {
			return err
		}
		cars, err := r.Cars().FindAll(ctx)
		if err != nil {
			return err
		}
		carNames := make(map[uuid.UUID]string, len(cars))
		for _, c := range cars {
			carNames[c.ID()] = c.DisplayName()
		}

		clientIDs := make([]uuid.UUID, 0, len(rs))
		for _, res := range rs {
			clientIDs = append(clientIDs, res.ClientID())
		}
		clients, err := r.Clients().FindByIDs(ctx, clientIDs)
		if err != nil {
			return err
		}
		clientNames := make(map[uuid.UUID]string, len(clients))
		for _, c := range clients {
			clientNames[c.ID()] = c.DisplayName()
		}

		entries = make([]calendar.Entry, 0, len(rs))
		for _, res := range rs {
			entries = append(entries, calendar.Entry{
				ReservationID: res.ID(),
				Title:         eventTitle(carNames[res.CarID()], clientNames[res.ClientID()]),
				CarID:         res.CarID(),
				ClientID:      res.ClientID(),
				Period:        res.Period(),
				Status:        res.Status(),
			})
		}
		return nil
	})
	if err != nil {
		return calendar.Grid{}, err
	}

	return calendar.Project(year, month, q.clock.Now(), loc, entries), nil
}

func eventTitle(carName, clientName string) string {
	switch {
	case carName == "" && clientName == "":
		return "Reservation"
	case clientName == "":
		return carName
	case carName == "":
		return clientName
	default:
		return carName + " - " + clientName
	}
}
