package response

import (
	"time"

	"fleetdesk/internal/domain/analytics"
	"fleetdesk/internal/domain/interval"
	"fleetdesk/internal/domain/reservation"
	"fleetdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type PeriodResponse struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

func fromPeriod(p interval.Interval) PeriodResponse {
	return PeriodResponse{StartDate: p.Start(), EndDate: p.End()}
}

type DashboardResponse struct {
	Period              PeriodResponse `json:"period" copier:"-"`
	TotalCars           int            `json:"total_cars"`
	AvailableCars       int            `json:"available_cars"`
	TotalClients        int            `json:"total_clients"`
	ActiveReservations  int            `json:"active_reservations"`
	PendingReservations int            `json:"pending_reservations"`
	TotalRevenue        int64          `json:"total_revenue"`
}

func FromDashboard(m analytics.DashboardMetrics) *DashboardResponse {
	res := &DashboardResponse{}
	mustCopy(res, m)
	res.Period = fromPeriod(m.Period)
	return res
}

type MonthlyCountResponse struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

type RankedResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Count int       `json:"count"`
}

type ReservationAnalyticsResponse struct {
	Year               int                    `json:"year"`
	Monthly            []MonthlyCountResponse `json:"monthly"`
	StatusDistribution map[string]int         `json:"status_distribution"`
	PopularCars        []RankedResponse       `json:"popular_cars"`
	TopClients         []RankedResponse       `json:"top_clients"`
}

func FromReservationAnalytics(a analytics.ReservationAnalytics) *ReservationAnalyticsResponse {
	res := &ReservationAnalyticsResponse{
		Year:               a.Year,
		Monthly:            []MonthlyCountResponse{},
		StatusDistribution: make(map[string]int, len(a.StatusDistribution)),
		PopularCars:        []RankedResponse{},
		TopClients:         []RankedResponse{},
	}
	mustCopy(&res.Monthly, a.Monthly)
	mustCopy(&res.PopularCars, a.PopularCars)
	mustCopy(&res.TopClients, a.TopClients)
	for status, n := range a.StatusDistribution {
		res.StatusDistribution[status.String()] = n
	}
	return res
}

type ReservationRefResponse struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	CarID         uuid.UUID `json:"car_id"`
	CarName       string    `json:"car_name"`
	ClientID      uuid.UUID `json:"client_id"`
	ClientName    string    `json:"client_name"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	TotalAmount   int64     `json:"total_amount"`
	DepositAmount int64     `json:"deposit_amount"`
}

func fromRef(r analytics.ReservationRef) ReservationRefResponse {
	return ReservationRefResponse{
		ReservationID: r.ReservationID,
		CarID:         r.CarID,
		CarName:       r.CarName,
		ClientID:      r.ClientID,
		ClientName:    r.ClientName,
		StartDate:     r.Period.Start(),
		EndDate:       r.Period.End(),
		Status:        r.Status.String(),
		PaymentStatus: r.PaymentStatus.String(),
		TotalAmount:   r.TotalAmount.Cents(),
		DepositAmount: r.Deposit.Cents(),
	}
}

func fromRefs(refs []analytics.ReservationRef) []ReservationRefResponse {
	res := make([]ReservationRefResponse, len(refs))
	for i, r := range refs {
		res[i] = fromRef(r)
	}
	return res
}

type RevenueBucketResponse struct {
	Label   string    `json:"label"`
	Start   time.Time `json:"start"`
	Revenue int64     `json:"revenue"`
	Count   int       `json:"count"`
}

type FinancialResponse struct {
	Period           PeriodResponse           `json:"period"`
	Granularity      string                   `json:"granularity"`
	Revenue          []RevenueBucketResponse  `json:"revenue"`
	TotalRevenue     int64                    `json:"total_revenue"`
	Outstanding      []ReservationRefResponse `json:"outstanding"`
	OutstandingTotal int64                    `json:"outstanding_total"`
	DepositsByStatus map[string]int64         `json:"deposits_by_status"`
}

func FromFinancial(f analytics.FinancialReport) *FinancialResponse {
	res := &FinancialResponse{
		Period:           fromPeriod(f.Period),
		Granularity:      string(f.Granularity),
		Revenue:          []RevenueBucketResponse{},
		TotalRevenue:     f.TotalRevenue.Cents(),
		Outstanding:      fromRefs(f.Outstanding),
		OutstandingTotal: f.OutstandingTotal.Cents(),
		DepositsByStatus: moneyByStatus(f.DepositsByStatus),
	}
	mustCopy(&res.Revenue, f.Revenue)
	return res
}

func moneyByStatus(m map[reservation.Status]reservation.Money) map[string]int64 {
	res := make(map[string]int64, len(m))
	for status, amount := range m {
		res[status.String()] = amount.Cents()
	}
	return res
}

type CarUtilizationResponse struct {
	CarID                 uuid.UUID `json:"car_id"`
	CarName               string    `json:"car_name"`
	DaysRented            int       `json:"days_rented"`
	UtilizationPercentage int       `json:"utilization_percentage"`
	Revenue               int64     `json:"revenue"`
	ReservationCount      int       `json:"reservation_count"`
}

type UtilizationResponse struct {
	Period              PeriodResponse           `json:"period"`
	DaysInRange         int                      `json:"days_in_range"`
	Cars                []CarUtilizationResponse `json:"cars"`
	FleetAverage        float64                  `json:"fleet_average"`
	FleetAverageRounded float64                  `json:"fleet_average_rounded"`
}

func FromUtilization(u analytics.UtilizationReport) *UtilizationResponse {
	res := &UtilizationResponse{
		Period:              fromPeriod(u.Period),
		DaysInRange:         u.DaysInRange,
		Cars:                []CarUtilizationResponse{},
		FleetAverage:        u.FleetAverage,
		FleetAverageRounded: u.FleetAverageRounded,
	}
	mustCopy(&res.Cars, u.Cars)
	return res
}

type OverdueReturnResponse struct {
	ReservationRefResponse
	DaysOverdue int `json:"days_overdue"`
}

type UpcomingResponse struct {
	Now             time.Time                `json:"now"`
	HorizonHours    int                      `json:"horizon_hours"`
	UpcomingPickups []ReservationRefResponse `json:"upcoming_pickups"`
	UpcomingReturns []ReservationRefResponse `json:"upcoming_returns"`
	OverdueReturns  []OverdueReturnResponse  `json:"overdue_returns"`
}

func FromUpcoming(u analytics.UpcomingEvents) *UpcomingResponse {
	overdue := make([]OverdueReturnResponse, len(u.OverdueReturns))
	for i, o := range u.OverdueReturns {
		overdue[i] = OverdueReturnResponse{
			ReservationRefResponse: fromRef(o.ReservationRef),
			DaysOverdue:            o.DaysOverdue,
		}
	}
	return &UpcomingResponse{
		Now:             u.Now,
		HorizonHours:    int(u.Horizon / time.Hour),
		UpcomingPickups: fromRefs(u.UpcomingPickups),
		UpcomingReturns: fromRefs(u.UpcomingReturns),
		OverdueReturns:  overdue,
	}
}

// OverviewResponse leaves a view null when it failed and names it in Errors.
type OverviewResponse struct {
	Dashboard    *DashboardResponse            `json:"dashboard"`
	Reservations *ReservationAnalyticsResponse `json:"reservations"`
	Financial    *FinancialResponse            `json:"financial"`
	Utilization  *UtilizationResponse          `json:"utilization"`
	Upcoming     *UpcomingResponse             `json:"upcoming"`
	Errors       map[string]string             `json:"errors,omitempty"`
}

func FromOverview(o *queries.Overview) *OverviewResponse {
	res := &OverviewResponse{}
	if o.Dashboard != nil {
		res.Dashboard = FromDashboard(*o.Dashboard)
	}
	if o.Reservations != nil {
		res.Reservations = FromReservationAnalytics(*o.Reservations)
	}
	if o.Financial != nil {
		res.Financial = FromFinancial(*o.Financial)
	}
	if o.Utilization != nil {
		res.Utilization = FromUtilization(*o.Utilization)
	}
	if o.Upcoming != nil {
		res.Upcoming = FromUpcoming(*o.Upcoming)
	}
	if len(o.Errors) > 0 {
		res.Errors = make(map[string]string, len(o.Errors))
		for view := range o.Errors {
			res.Errors[string(view)] = "failed to load " + string(view)
		}
	}
	return res
}
