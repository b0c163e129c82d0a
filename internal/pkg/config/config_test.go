//go:build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarConfig_Location(t *testing.T) {
	t.Run("known zone", func(t *testing.T) {
		loc, err := CalendarConfig{TimeZone: "UTC"}.Location()
		require.NoError(t, err)
		assert.Equal(t, "UTC", loc.String())
	})

	t.Run("unknown zone", func(t *testing.T) {
		_, err := CalendarConfig{TimeZone: "Mars/Olympus_Mons"}.Location()
		assert.ErrorContains(t, err, "Mars/Olympus_Mons")
	})
}

func TestNewTestConfig(t *testing.T) {
	cfg := NewTestConfig()

	assert.NotEmpty(t, cfg.JWT.Secret)
	assert.Equal(t, "fleetdesk", cfg.JWT.Issuer)
	assert.Positive(t, cfg.Analytics.TopN)
	assert.Positive(t, cfg.DB.MaxConns)
}
