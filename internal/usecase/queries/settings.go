package queries

import (
	"time"

	"fleetdesk/internal/domain/analytics"
)

// Settings carries the read-side knobs that come from configuration.
type Settings struct {
	// Location decides day boundaries for calendar cells and report buckets.
	Location        *time.Location
	UpcomingHorizon time.Duration
	TopN            int
	// OverviewConcurrency limits how many views one overview load computes at once.
	OverviewConcurrency int
}

func DefaultSettings() Settings {
	return Settings{
		Location:            time.UTC,
		UpcomingHorizon:     analytics.DefaultHorizon,
		TopN:                analytics.DefaultTopN,
		OverviewConcurrency: 5,
	}
}

func (s Settings) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}
