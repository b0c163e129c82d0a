//go:build unit

package interval_test

import (
	"testing"
	"time"

	"fleetdesk/internal/domain/interval"
	"fleetdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNew(t *testing.T) {
	testCases := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{name: "valid range", start: date(2024, 1, 1), end: date(2024, 1, 5)},
		{name: "zero length", start: date(2024, 1, 1), end: date(2024, 1, 1), errIs: interval.ErrInvalidInterval},
		{name: "inverted", start: date(2024, 1, 5), end: date(2024, 1, 1), errIs: interval.ErrInvalidInterval},
		{name: "missing start", end: date(2024, 1, 1), errIs: errs.ErrValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			iv, err := interval.New(tc.start, tc.end)
			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.start, iv.Start())
			assert.Equal(t, tc.end, iv.End())
		})
	}
}

func TestOverlaps(t *testing.T) {
	jan1to5 := interval.MustNew(date(2024, 1, 1), date(2024, 1, 5))

	testCases := []struct {
		name  string
		other interval.Interval
		want  bool
	}{
		{name: "adjacent after", other: interval.MustNew(date(2024, 1, 5), date(2024, 1, 10)), want: false},
		{name: "adjacent before", other: interval.MustNew(date(2023, 12, 28), date(2024, 1, 1)), want: false},
		{name: "partial overlap", other: interval.MustNew(date(2024, 1, 3), date(2024, 1, 7)), want: true},
		{name: "contained", other: interval.MustNew(date(2024, 1, 2), date(2024, 1, 3)), want: true},
		{name: "containing", other: interval.MustNew(date(2023, 12, 1), date(2024, 2, 1)), want: true},
		{name: "identical", other: jan1to5, want: true},
		{name: "disjoint", other: interval.MustNew(date(2024, 2, 1), date(2024, 2, 3)), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, interval.Overlaps(jan1to5, tc.other))
			// symmetry
			assert.Equal(t, interval.Overlaps(jan1to5, tc.other), interval.Overlaps(tc.other, jan1to5))
		})
	}
}

func TestOverlaps_Self(t *testing.T) {
	base := date(2024, 1, 1)
	for _, d := range []time.Duration{time.Millisecond, time.Hour, 24 * time.Hour, 400 * 24 * time.Hour} {
		iv := interval.MustNew(base, base.Add(d))
		assert.True(t, iv.Overlaps(iv), "duration %s", d)
	}
}

func TestDurationDays(t *testing.T) {
	testCases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{name: "four whole days", start: date(2024, 1, 1), end: date(2024, 1, 5), want: 4},
		{name: "partial day rounds up", start: date(2024, 1, 1), end: date(2024, 1, 2).Add(time.Hour), want: 2},
		{name: "under a day is one", start: date(2024, 1, 1), end: date(2024, 1, 1).Add(3 * time.Hour), want: 1},
		{name: "across leap day", start: date(2024, 2, 28), end: date(2024, 3, 1), want: 2},
		{
			name:  "mixed zones use UTC",
			start: time.Date(2024, 1, 1, 9, 0, 0, 0, time.FixedZone("JST", 9*60*60)),
			end:   date(2024, 1, 2),
			want:  1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, interval.MustNew(tc.start, tc.end).DurationDays())
		})
	}
}

func TestContainsDay(t *testing.T) {
	iv := interval.MustNew(
		time.Date(2024, 1, 3, 15, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC),
	)

	assert.False(t, iv.ContainsDay(date(2024, 1, 2), time.UTC))
	assert.True(t, iv.ContainsDay(date(2024, 1, 3), time.UTC), "start day is inclusive from midnight")
	assert.True(t, iv.ContainsDay(date(2024, 1, 4), time.UTC))
	assert.True(t, iv.ContainsDay(date(2024, 1, 5), time.UTC), "end day is inclusive until 23:59:59.999")
	assert.False(t, iv.ContainsDay(date(2024, 1, 6), time.UTC))
}

func TestMonthRange(t *testing.T) {
	feb := interval.MonthRange(2024, time.February, time.UTC)
	assert.Equal(t, date(2024, 2, 1), feb.Start())
	assert.Equal(t, date(2024, 3, 1), feb.End())
	assert.Equal(t, 29, feb.DurationDays())

	dec := interval.MonthRange(2023, time.December, nil)
	assert.Equal(t, date(2024, 1, 1), dec.End())
}

func TestIncludes(t *testing.T) {
	iv := interval.MustNew(date(2024, 1, 1), date(2024, 1, 5))
	assert.True(t, iv.Includes(date(2024, 1, 1)))
	assert.True(t, iv.Includes(date(2024, 1, 4)))
	assert.False(t, iv.Includes(date(2024, 1, 5)))
	assert.Equal(t, "[2024-01-01T00:00:00Z,2024-01-05T00:00:00Z)", iv.String())
}
