package queries

import (
	"context"
	"sync"
	"sync/atomic"

	"fleetdesk/internal/domain/analytics"
	"fleetdesk/internal/pkg/errs"
	"fleetdesk/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

var ErrSuperseded = errs.Mark(errs.New("overview load superseded by a newer request"), errs.ErrConflict)

type ViewName string

const (
	ViewDashboard    ViewName = "dashboard"
	ViewReservations ViewName = "reservations"
	ViewFinancial    ViewName = "financial"
	ViewUtilization  ViewName = "utilization"
	ViewUpcoming     ViewName = "upcoming"
)

// Overview holds whichever views succeeded; the rest are listed in Errors.
type Overview struct {
	Dashboard    *analytics.DashboardMetrics
	Reservations *analytics.ReservationAnalytics
	Financial    *analytics.FinancialReport
	Utilization  *analytics.UtilizationReport
	Upcoming     *analytics.UpcomingEvents
	Errors       map[ViewName]error
}

type OverviewLoader interface {
	Load(ctx context.Context, session shared.Session, params AnalyticsParams) (*Overview, error)
}

type generation struct {
	id         uint64
	cancel     context.CancelFunc
	superseded atomic.Bool
}

type overviewLoaderImpl struct {
	analytics AnalyticsQueries
	settings  Settings

	mu       sync.Mutex
	seq      uint64
	inflight map[string]*generation
}

func NewOverviewLoader(aq AnalyticsQueries, settings Settings) OverviewLoader {
	return &overviewLoaderImpl{
		analytics: aq,
		settings:  settings,
		inflight:  make(map[string]*generation),
	}
}

// Load computes every analytics view concurrently. A newer Load for the same
// session cancels this one, which then returns ErrSuperseded and no data.
func (l *overviewLoaderImpl) Load(ctx context.Context, session shared.Session, params AnalyticsParams) (*Overview, error) {
	ctx, gen := l.begin(ctx, session.Key())
	defer l.end(session.Key(), gen)

	out := &Overview{Errors: map[ViewName]error{}}
	var mu sync.Mutex
	record := func(name ViewName, err error) {
		mu.Lock()
		defer mu.Unlock()
		out.Errors[name] = err
	}

	var g errgroup.Group
	if l.settings.OverviewConcurrency > 0 {
		g.SetLimit(l.settings.OverviewConcurrency)
	}

	g.Go(func() error {
		v, err := l.analytics.Dashboard(ctx, session, params)
		if err != nil {
			record(ViewDashboard, err)
			return nil
		}
		mu.Lock()
		out.Dashboard = &v
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		v, err := l.analytics.Reservations(ctx, session, params)
		if err != nil {
			record(ViewReservations, err)
			return nil
		}
		mu.Lock()
		out.Reservations = &v
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		v, err := l.analytics.Financial(ctx, session, params)
		if err != nil {
			record(ViewFinancial, err)
			return nil
		}
		mu.Lock()
		out.Financial = &v
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		v, err := l.analytics.Utilization(ctx, session, params)
		if err != nil {
			record(ViewUtilization, err)
			return nil
		}
		mu.Lock()
		out.Utilization = &v
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		v, err := l.analytics.Upcoming(ctx, session, params)
		if err != nil {
			record(ViewUpcoming, err)
			return nil
		}
		mu.Lock()
		out.Upcoming = &v
		mu.Unlock()
		return nil
	})

	// views never fail the group; failures are per view
	_ = g.Wait()

	if gen.superseded.Load() {
		return nil, ErrSuperseded
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *overviewLoaderImpl) begin(parent context.Context, key string) (context.Context, *generation) {
	ctx, cancel := context.WithCancel(parent)

	l.mu.Lock()
	defer l.mu.Unlock()

	if prev, ok := l.inflight[key]; ok {
		prev.superseded.Store(true)
		prev.cancel()
	}
	l.seq++
	gen := &generation{id: l.seq, cancel: cancel}
	l.inflight[key] = gen
	return ctx, gen
}

func (l *overviewLoaderImpl) end(key string, gen *generation) {
	l.mu.Lock()
	if cur, ok := l.inflight[key]; ok && cur.id == gen.id {
		delete(l.inflight, key)
	}
	l.mu.Unlock()
	gen.cancel()
}
