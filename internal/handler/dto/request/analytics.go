package request

import (
	"time"

	"fleetdesk/internal/domain/analytics"
	"fleetdesk/internal/usecase/queries"
)

type CalendarQuery struct {
	Year  int `form:"year" binding:"required,min=1970,max=9999"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// AnalyticsQuery timestamps are RFC 3339. Every field is optional.
type AnalyticsQuery struct {
	StartDate   *time.Time `form:"start_date"`
	EndDate     *time.Time `form:"end_date"`
	Year        int        `form:"year" binding:"omitempty,min=1970,max=9999"`
	TopN        int        `form:"top_n" binding:"omitempty,min=1,max=50"`
	Granularity string     `form:"granularity" binding:"omitempty,oneof=day week month"`
	HorizonDays int        `form:"horizon_days" binding:"omitempty,min=1,max=365"`
}

func (q *AnalyticsQuery) ToParams() (queries.AnalyticsParams, error) {
	granularity, err := analytics.ParseGranularity(q.Granularity)
	if err != nil {
		return queries.AnalyticsParams{}, err
	}
	return queries.AnalyticsParams{
		Start:       q.StartDate,
		End:         q.EndDate,
		Year:        q.Year,
		TopN:        q.TopN,
		Granularity: granularity,
		Horizon:     time.Duration(q.HorizonDays) * 24 * time.Hour,
	}, nil
}
