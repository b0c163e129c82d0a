package queries

import (
	"context"
	"time"

	"fleetdesk/internal/domain/analytics"
	"fleetdesk/internal/domain/interval"
	"fleetdesk/internal/pkg/clock"
	"fleetdesk/internal/pkg/errs"
	"fleetdesk/internal/pkg/patch"
	"fleetdesk/internal/usecase/shared"
)

// AnalyticsParams are the caller's optional inputs; zero values fall back to
// the current month, the current year and the configured horizon.
type AnalyticsParams struct {
	Start       *time.Time
	End         *time.Time
	Year        int
	TopN        int
	Granularity analytics.Granularity
	Horizon     time.Duration
}

type resolvedParams struct {
	now         time.Time
	period      interval.Interval
	year        int
	topN        int
	granularity analytics.Granularity
	horizon     time.Duration
}

type AnalyticsQueries interface {
	Dashboard(ctx context.Context, session shared.Session, params AnalyticsParams) (analytics.DashboardMetrics, error)
	Reservations(ctx context.Context, session shared.Session, params AnalyticsParams) (analytics.ReservationAnalytics, error)
	Financial(ctx context.Context, session shared.Session, params AnalyticsParams) (analytics.FinancialReport, error)
	Utilization(ctx context.Context, session shared.Session, params AnalyticsParams) (analytics.UtilizationReport, error)
	Upcoming(ctx context.Context, session shared.Session, params AnalyticsParams) (analytics.UpcomingEvents, error)
}

type analyticsQueriesImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	settings Settings
}

func NewAnalyticsQueries(uow shared.UnitOfWork, clk clock.Clock, settings Settings) AnalyticsQueries {
	return &analyticsQueriesImpl{uow: uow, clock: clk, settings: settings}
}

func (q *analyticsQueriesImpl) Dashboard(ctx context.Context, _ shared.Session, params AnalyticsParams) (analytics.DashboardMetrics, error) {
	p, snap, err := q.prepare(ctx, params)
	if err != nil {
		return analytics.DashboardMetrics{}, err
	}
	return analytics.Dashboard(snap, p.period), nil
}

func (q *analyticsQueriesImpl) Reservations(ctx context.Context, _ shared.Session, params AnalyticsParams) (analytics.ReservationAnalytics, error) {
	p, snap, err := q.prepare(ctx, params)
	if err != nil {
		return analytics.ReservationAnalytics{}, err
	}
	return analytics.Reservations(snap, p.year, p.topN, q.settings.location()), nil
}

func (q *analyticsQueriesImpl) Financial(ctx context.Context, _ shared.Session, params AnalyticsParams) (analytics.FinancialReport, error) {
	p, snap, err := q.prepare(ctx, params)
	if err != nil {
		return analytics.FinancialReport{}, err
	}
	return analytics.Financial(snap, p.period, p.granularity, q.settings.location()), nil
}

func (q *analyticsQueriesImpl) Utilization(ctx context.Context, _ shared.Session, params AnalyticsParams) (analytics.UtilizationReport, error) {
	p, snap, err := q.prepare(ctx, params)
	if err != nil {
		return analytics.UtilizationReport{}, err
	}
	return analytics.Utilization(snap, p.period), nil
}

func (q *analyticsQueriesImpl) Upcoming(ctx context.Context, _ shared.Session, params AnalyticsParams) (analytics.UpcomingEvents, error) {
	p, snap, err := q.prepare(ctx, params)
	if err != nil {
		return analytics.UpcomingEvents{}, err
	}
	return analytics.Upcoming(snap, p.now, p.horizon), nil
}

func (q *analyticsQueriesImpl) prepare(ctx context.Context, params AnalyticsParams) (resolvedParams, analytics.Snapshot, error) {
	p, err := q.resolve(params)
	if err != nil {
		return resolvedParams{}, analytics.Snapshot{}, err
	}
	snap, err := q.loadSnapshot(ctx)
	if err != nil {
		return resolvedParams{}, analytics.Snapshot{}, err
	}
	return p, snap, nil
}

func (q *analyticsQueriesImpl) resolve(params AnalyticsParams) (resolvedParams, error) {
	loc := q.settings.location()
	now := q.clock.Now().In(loc)

	p := resolvedParams{
		now:         now,
		year:        params.Year,
		topN:        params.TopN,
		granularity: params.Granularity,
		horizon:     params.Horizon,
	}

	switch {
	case params.Start == nil && params.End == nil:
		p.period = interval.MonthRange(now.Year(), now.Month(), loc)
	case params.Start == nil || params.End == nil:
		return resolvedParams{}, errs.Mark(errs.New("start_date and end_date must be given together"), errs.ErrValidation)
	default:
		period, err := interval.New(*params.Start, *params.End)
		if err != nil {
			return resolvedParams{}, err
		}
		p.period = period
	}

	p.year = patch.NonZero(p.year, now.Year())
	p.topN = patch.NonZero(p.topN, q.settings.TopN)
	p.granularity = patch.NonZero(p.granularity, analytics.GranularityMonth)
	p.horizon = patch.NonZero(p.horizon, q.settings.UpcomingHorizon)
	if err := analytics.CheckPeriod(p.period, p.granularity, loc); err != nil {
		return resolvedParams{}, err
	}
	return p, nil
}

func (q *analyticsQueriesImpl) loadSnapshot(ctx context.Context) (analytics.Snapshot, error) {
	var snap analytics.Snapshot
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, r shared.Reads) error {
		var err error
		if snap.Cars, err = r.Cars().FindAll(ctx); err != nil {
			return err
		}
		if snap.Clients, err = r.Clients().FindAll(ctx); err != nil {
			return err
		}
		snap.Reservations, err = r.Reservations().FindAll(ctx)
		return err
	})
	if err != nil {
		return analytics.Snapshot{}, err
	}
	return snap, nil
}
