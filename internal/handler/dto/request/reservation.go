package request

import (
	"time"

	"fleetdesk/internal/pkg/errs"
	"fleetdesk/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// CreateReservationRequest amounts are in minor currency units.
type CreateReservationRequest struct {
	CarID          uuid.UUID `json:"car_id" binding:"required"`
	ClientID       uuid.UUID `json:"client_id" binding:"required"`
	StartDate      time.Time `json:"start_date" binding:"required"`
	EndDate        time.Time `json:"end_date" binding:"required"`
	DepositAmount  int64     `json:"deposit_amount" binding:"min=0"`
	PickupLocation *string   `json:"pickup_location" binding:"omitempty,max=255"`
	ReturnLocation *string   `json:"return_location" binding:"omitempty,max=255"`
	Notes          *string   `json:"notes" binding:"omitempty,max=2000"`
}

func (r *CreateReservationRequest) ToInput(idempotencyKey *uuid.UUID) (commands.CreateReservationInput, error) {
	var in commands.CreateReservationInput
	if err := copier.Copy(&in, r); err != nil {
		return commands.CreateReservationInput{}, errs.Wrap(err, "copy reservation request")
	}
	in.IdempotencyKey = idempotencyKey
	return in, nil
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ChangePaymentRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

type AvailabilityCheckRequest struct {
	CarID     uuid.UUID `json:"car_id" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}
