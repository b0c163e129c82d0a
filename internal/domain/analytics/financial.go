package analytics

import (
	"fmt"
	"sort"
	"time"

	"fleetdesk/internal/domain/interval"
	"fleetdesk/internal/domain/reservation"
	"fleetdesk/internal/pkg/clock"
	"fleetdesk/internal/pkg/errs"
)

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

var ErrInvalidGranularity = errs.Mark(errs.New("granularity must be day, week or month"), errs.ErrValidation)

func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(s); g {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return g, nil
	case "":
		return GranularityMonth, nil
	default:
		return "", ErrInvalidGranularity
	}
}

type RevenueBucket struct {
	Label   string
	Start   time.Time
	Revenue reservation.Money
	Count   int
}

type FinancialReport struct {
	Period           interval.Interval
	Granularity      Granularity
	Revenue          []RevenueBucket
	TotalRevenue     reservation.Money
	Outstanding      []ReservationRef
	OutstandingTotal reservation.Money
	DepositsByStatus map[reservation.Status]reservation.Money
}

// Financial buckets revenue by the start date of each reservation starting in
// period. Buckets are zero-filled across the whole period, and left empty when
// the period needs more than MaxBuckets of them. Outstanding lists
// reservations intersecting period that are not fully paid, oldest first.
func Financial(snap Snapshot, period interval.Interval, g Granularity, loc *time.Location) FinancialReport {
	if loc == nil {
		loc = time.UTC
	}
	dir := newDirectory(snap)

	report := FinancialReport{
		Period:           period,
		Granularity:      g,
		Revenue:          buckets(period, g, loc),
		Outstanding:      []ReservationRef{},
		DepositsByStatus: make(map[reservation.Status]reservation.Money, len(reservation.Statuses)),
	}
	for _, s := range reservation.Statuses {
		report.DepositsByStatus[s] = reservation.Money{}
	}

	for _, r := range snap.Reservations {
		if r == nil || !period.Includes(r.Start()) {
			continue
		}
		report.TotalRevenue = report.TotalRevenue.Add(r.TotalAmount())
		if idx := bucketIndex(report.Revenue, r.Start()); idx >= 0 {
			report.Revenue[idx].Revenue = report.Revenue[idx].Revenue.Add(r.TotalAmount())
			report.Revenue[idx].Count++
		}
	}

	inPeriod := intersecting(snap.Reservations, period)
	sortByStart(inPeriod)
	for _, r := range inPeriod {
		report.DepositsByStatus[r.Status()] = report.DepositsByStatus[r.Status()].Add(r.Deposit())
		if r.PaymentStatus() != reservation.PaymentPaid {
			report.Outstanding = append(report.Outstanding, dir.ref(r))
			report.OutstandingTotal = report.OutstandingTotal.Add(r.TotalAmount())
		}
	}
	return report
}

// MaxBuckets caps the length of one revenue series.
const MaxBuckets = 366

var ErrPeriodTooLong = errs.Mark(errs.Newf("period spans more than %d revenue buckets", MaxBuckets), errs.ErrValidation)

// CheckPeriod rejects periods that would need more than MaxBuckets buckets of g.
// It walks at most MaxBuckets+1 steps.
func CheckPeriod(period interval.Interval, g Granularity, loc *time.Location) error {
	if period.IsZero() {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}
	start, step, _ := bucketPlan(period, g, loc)
	n := 0
	for t := start; t.Before(period.End()); t = step(t) {
		n++
		if n > MaxBuckets {
			return ErrPeriodTooLong
		}
	}
	return nil
}

func bucketPlan(period interval.Interval, g Granularity, loc *time.Location) (time.Time, func(time.Time) time.Time, func(time.Time) string) {
	start := clock.StartOfDay(period.Start(), loc)
	switch g {
	case GranularityDay:
		return start,
			func(t time.Time) time.Time { return t.AddDate(0, 0, 1) },
			func(t time.Time) string { return t.Format("2006-01-02") }
	case GranularityWeek:
		offset := (int(start.Weekday()) + 6) % 7
		return start.AddDate(0, 0, -offset),
			func(t time.Time) time.Time { return t.AddDate(0, 0, 7) },
			func(t time.Time) string {
				y, w := t.ISOWeek()
				return fmt.Sprintf("%d-W%02d", y, w)
			}
	default:
		return time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, loc),
			func(t time.Time) time.Time { return t.AddDate(0, 1, 0) },
			func(t time.Time) string { return t.Format("2006-01") }
	}
}

// buckets is empty for periods CheckPeriod rejects.
func buckets(period interval.Interval, g Granularity, loc *time.Location) []RevenueBucket {
	if period.IsZero() || CheckPeriod(period, g, loc) != nil {
		return []RevenueBucket{}
	}
	start, step, label := bucketPlan(period, g, loc)

	out := []RevenueBucket{}
	for t := start; t.Before(period.End()); t = step(t) {
		out = append(out, RevenueBucket{Label: label(t), Start: t})
	}
	return out
}

// bucketIndex finds the last bucket starting at or before t.
func bucketIndex(bs []RevenueBucket, t time.Time) int {
	i := sort.Search(len(bs), func(i int) bool { return bs[i].Start.After(t) })
	return i - 1
}
