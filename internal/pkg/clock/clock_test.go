//go:build unit

package clock_test

import (
	"testing"
	"time"

	"fleetdesk/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	c := clock.NewFixedClock(start)
	assert.Equal(t, start, c.Now())

	c.Advance(36 * time.Hour)
	assert.Equal(t, time.Date(2024, 3, 2, 21, 0, 0, 0, time.UTC), c.Now())
}

func TestStartOfDay(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)

	// 2024-03-01 20:00 UTC is already March 2nd in Tokyo
	instant := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), clock.StartOfDay(instant, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, tokyo), clock.StartOfDay(instant, tokyo))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), clock.StartOfDay(instant, nil))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC)
	c := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, clock.SameDay(a, b, time.UTC))
	assert.False(t, clock.SameDay(b, c, time.UTC))
}
