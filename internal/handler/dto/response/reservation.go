package response

import (
	"time"

	"fleetdesk/internal/domain/reservation"
	"fleetdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID             uuid.UUID `json:"id"`
	ClientID       uuid.UUID `json:"client_id"`
	ClientName     string    `json:"client_name"`
	CarID          uuid.UUID `json:"car_id"`
	CarName        string    `json:"car_name"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"payment_status"`
	DailyRate      int64     `json:"daily_rate"`
	TotalAmount    int64     `json:"total_amount"`
	DepositAmount  int64     `json:"deposit_amount"`
	PickupLocation *string   `json:"pickup_location"`
	ReturnLocation *string   `json:"return_location"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:             v.ID,
		ClientID:       v.ClientID,
		ClientName:     v.ClientName,
		CarID:          v.CarID,
		CarName:        v.CarName,
		StartDate:      v.StartDate,
		EndDate:        v.EndDate,
		Status:         v.Status.String(),
		PaymentStatus:  v.PaymentStatus.String(),
		DailyRate:      v.DailyRate.Cents(),
		TotalAmount:    v.TotalAmount.Cents(),
		DepositAmount:  v.Deposit.Cents(),
		PickupLocation: v.PickupLocation,
		ReturnLocation: v.ReturnLocation,
		Notes:          v.Notes,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

type PricingResponse struct {
	DailyRate   int64 `json:"daily_rate"`
	TotalDays   int   `json:"total_days"`
	TotalAmount int64 `json:"total_amount"`
}

func FromPricing(p reservation.Pricing) *PricingResponse {
	res := &PricingResponse{}
	mustCopy(res, p)
	return res
}

type CreateReservationResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
	Pricing     *PricingResponse     `json:"pricing"`
}

type ConflictResponse struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Status        string    `json:"status"`
}

type AvailabilityResponse struct {
	Available bool               `json:"available"`
	Message   string             `json:"message"`
	Pricing   *PricingResponse   `json:"pricing,omitempty"`
	Conflicts []ConflictResponse `json:"conflicts,omitempty"`
}

func FromAvailability(r reservation.AvailabilityResult) *AvailabilityResponse {
	res := &AvailabilityResponse{
		Available: r.Available,
		Message:   r.Message,
		Conflicts: FromConflicts(r.Conflicts),
	}
	if r.Pricing != nil {
		res.Pricing = FromPricing(*r.Pricing)
	}
	return res
}

func FromConflicts(conflicts []reservation.Conflict) []ConflictResponse {
	if len(conflicts) == 0 {
		return nil
	}
	res := make([]ConflictResponse, len(conflicts))
	for i, c := range conflicts {
		res[i] = ConflictResponse{
			ReservationID: c.ReservationID,
			StartDate:     c.Period.Start(),
			EndDate:       c.Period.End(),
			Status:        c.Status.String(),
		}
	}
	return res
}
