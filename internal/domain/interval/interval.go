package interval

import (
	"fmt"
	"math"
	"time"

	"fleetdesk/internal/pkg/clock"
	"fleetdesk/internal/pkg/errs"
)

var ErrInvalidInterval = errs.Mark(errs.New("start must be before end"), errs.ErrValidation)

const day = 24 * time.Hour

// Interval is a half-open date-time range [start, end).
type Interval struct {
	start time.Time
	end   time.Time
}

// New rejects zero-length and inverted ranges instead of normalizing them.
func New(start, end time.Time) (Interval, error) {
	if start.IsZero() || end.IsZero() {
		return Interval{}, errs.Mark(errs.New("start and end are required"), errs.ErrValidation)
	}
	if !start.Before(end) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

// MustNew is for tests and constants.
func MustNew(start, end time.Time) Interval {
	iv, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

// MonthRange covers the calendar month [first day, first day of next month) in loc.
func MonthRange(year int, month time.Month, loc *time.Location) Interval {
	if loc == nil {
		loc = time.UTC
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return Interval{start: first, end: first.AddDate(0, 1, 0)}
}

func (i Interval) Start() time.Time { return i.start }
func (i Interval) End() time.Time   { return i.end }

func (i Interval) IsZero() bool {
	return i.start.IsZero() && i.end.IsZero()
}

func (i Interval) Duration() time.Duration {
	return i.end.Sub(i.start)
}

// Overlaps uses half-open semantics: an end equal to the other's start does not overlap.
func Overlaps(a, b Interval) bool {
	return a.start.Before(b.end) && b.start.Before(a.end)
}

func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i, other)
}

// DurationDays is the ceiling of whole days spanned, never less than 1.
func (i Interval) DurationDays() int {
	hours := i.end.UTC().Sub(i.start.UTC()).Hours()
	days := int(math.Ceil(hours / 24))
	if days < 1 {
		return 1
	}
	return days
}

// ContainsDay treats both the start day and the end day as fully included in
// loc, which is what the calendar renders even though Overlaps is half-open.
func (i Interval) ContainsDay(d time.Time, loc *time.Location) bool {
	cell := clock.StartOfDay(d, loc)
	first := clock.StartOfDay(i.start, loc)
	last := clock.StartOfDay(i.end, loc).Add(day - time.Millisecond)
	return !cell.Before(first) && !cell.After(last)
}

// Includes reports whether t lies in [start, end).
func (i Interval) Includes(t time.Time) bool {
	return !t.Before(i.start) && t.Before(i.end)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s,%s)", i.start.Format(time.RFC3339), i.end.Format(time.RFC3339))
}
