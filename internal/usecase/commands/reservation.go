package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"fleetdesk/internal/domain/interval"
	"fleetdesk/internal/domain/reservation"
	"fleetdesk/internal/infra"
	"fleetdesk/internal/pkg/clock"
	"fleetdesk/internal/pkg/errs"
	"fleetdesk/internal/pkg/patch"
	"fleetdesk/internal/usecase/queries"
	"fleetdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	createReservationEndpoint = "POST /api/reservations"
	idempotencyTTL            = 24 * time.Hour

	topicReservationCreated       = "reservation_created"
	topicReservationStatusChanged = "reservation_status_changed"
)

var (
	ErrIdempotencyInProgress = errs.Mark(errs.New("a request with this idempotency key is still in progress"), errs.ErrConflict)
	ErrIdempotencyKeyReused  = errs.Mark(errs.New("idempotency key was used with a different request"), errs.ErrConflict)
)

// ConflictError carries the negative availability result of a rejected booking.
type ConflictError struct {
	Result reservation.AvailabilityResult
}

func (e *ConflictError) Error() string {
	return reservation.ErrReservationConflict.Error()
}

func (e *ConflictError) Unwrap() error {
	return reservation.ErrReservationConflict
}

type CreateReservationInput struct {
	CarID          uuid.UUID  `json:"car_id"`
	ClientID       uuid.UUID  `json:"client_id"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        time.Time  `json:"end_date"`
	DepositAmount  int64      `json:"deposit_amount"`
	PickupLocation *string    `json:"pickup_location,omitempty"`
	ReturnLocation *string    `json:"return_location,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	IdempotencyKey *uuid.UUID `json:"-"`
}

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	Pricing     reservation.Pricing
	IsReplayed  bool
}

type ReservationCommands interface {
	Create(ctx context.Context, session shared.Session, in CreateReservationInput) (*CreateReservationResult, error)
	ChangeStatus(ctx context.Context, session shared.Session, id uuid.UUID, status string) (*queries.ReservationView, error)
	ChangePayment(ctx context.Context, session shared.Session, id uuid.UUID, paymentStatus string) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	clock   clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, factory *reservation.Factory, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{uow: uow, factory: factory, clock: clk}
}

func (c *reservationCommandsImpl) Create(
	ctx context.Context,
	session shared.Session,
	in CreateReservationInput,
) (*CreateReservationResult, error) {
	if err := session.RequireManager(); err != nil {
		return nil, err
	}
	period, err := interval.New(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	deposit, err := reservation.NewNonNegativeMoney(in.DepositAmount)
	if err != nil {
		return nil, err
	}
	extras := reservation.Extras{
		Deposit:        deposit,
		PickupLocation: reservation.NewLocation(patch.Coalesce(in.PickupLocation, "")),
		ReturnLocation: reservation.NewLocation(patch.Coalesce(in.ReturnLocation, "")),
		Notes:          reservation.NewNote(patch.Coalesce(in.Notes, "")),
	}

	if in.IdempotencyKey != nil {
		replay, err := c.claimIdempotencyKey(ctx, session, *in.IdempotencyKey, requestHash(in))
		if err != nil {
			return nil, err
		}
		if replay != nil {
			return replay, nil
		}
	}

	result, err := c.createInTx(ctx, session, in, period, extras)
	if err != nil && in.IdempotencyKey != nil {
		c.releaseIdempotencyKey(ctx, session, *in.IdempotencyKey)
	}
	return result, err
}

func (c *reservationCommandsImpl) createInTx(
	ctx context.Context,
	session shared.Session,
	in CreateReservationInput,
	period interval.Interval,
	extras reservation.Extras,
) (*CreateReservationResult, error) {
	var out *CreateReservationResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		car, err := tx.Cars().LockByID(ctx, in.CarID)
		if err != nil {
			return mapNotFound(err, queries.ErrCarNotFound)
		}
		if _, err := tx.Clients().FindByID(ctx, in.ClientID); err != nil {
			return mapNotFound(err, queries.ErrClientNotFound)
		}

		existing, err := tx.Reservations().FindByCar(ctx, car.ID())
		if err != nil {
			return err
		}

		res, availability, err := c.factory.Create(car.Rate(), in.ClientID, period, existing, extras)
		if err != nil {
			if errs.Is(err, reservation.ErrReservationConflict) {
				return &ConflictError{Result: availability}
			}
			return err
		}

		if err := tx.Reservations().Create(ctx, res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return &ConflictError{Result: reservation.AvailabilityResult{Message: reservation.MessageUnavailable}}
			}
			return err
		}
		if err := c.enqueue(ctx, tx, topicReservationCreated, res); err != nil {
			return err
		}
		if in.IdempotencyKey != nil {
			if err := tx.Idempotency().Complete(ctx, *in.IdempotencyKey, session.UserID, res.ID()); err != nil {
				return err
			}
		}

		view, err := queries.LoadReservationView(ctx, tx.Reads(), res.ID())
		if err != nil {
			return err
		}
		out = &CreateReservationResult{Reservation: view, Pricing: *availability.Pricing}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "reservation created",
		"reservation_id", out.Reservation.ID,
		"car_id", in.CarID,
		"user_id", session.UserID)
	return out, nil
}

// claimIdempotencyKey returns a replayed result when the key already
// completed with the same request, and nil when this request owns the key.
func (c *reservationCommandsImpl) claimIdempotencyKey(
	ctx context.Context,
	session shared.Session,
	key uuid.UUID,
	hash string,
) (*CreateReservationResult, error) {
	var replay *CreateReservationResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		inserted, err := tx.Idempotency().TryInsert(ctx, key, session.UserID, createReservationEndpoint, hash, now.Add(idempotencyTTL))
		if err != nil {
			return err
		}
		if inserted {
			return nil
		}

		rec, err := tx.Idempotency().Get(ctx, key, session.UserID)
		if err != nil {
			return err
		}
		if rec.RequestHash != hash {
			return ErrIdempotencyKeyReused
		}

		switch rec.Status {
		case shared.IdempotencyCompleted:
			if rec.ResultReservationID == nil {
				return errs.New("completed idempotency key has no reservation")
			}
			view, err := queries.LoadReservationView(ctx, tx.Reads(), *rec.ResultReservationID)
			if err != nil {
				return err
			}
			replay = &CreateReservationResult{
				Reservation: view,
				Pricing: reservation.Pricing{
					DailyRate:   view.DailyRate,
					TotalDays:   interval.MustNew(view.StartDate, view.EndDate).DurationDays(),
					TotalAmount: view.TotalAmount,
				},
				IsReplayed: true,
			}
			return nil
		case shared.IdempotencyProcessing:
			if rec.ExpiresAt.After(now) {
				return ErrIdempotencyInProgress
			}
			claimed, err := tx.Idempotency().ClaimExpired(ctx, key, session.UserID, hash, now.Add(idempotencyTTL))
			if err != nil {
				return err
			}
			if claimed == 0 {
				return ErrIdempotencyInProgress
			}
			return nil
		default:
			return errs.Newf("unknown idempotency status %q", rec.Status)
		}
	})
	if err != nil {
		return nil, err
	}
	return replay, nil
}

func (c *reservationCommandsImpl) releaseIdempotencyKey(ctx context.Context, session shared.Session, key uuid.UUID) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, key, session.UserID)
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to release idempotency key", "key", key, "error", err)
	}
}

func (c *reservationCommandsImpl) ChangeStatus(
	ctx context.Context,
	session shared.Session,
	id uuid.UUID,
	status string,
) (*queries.ReservationView, error) {
	if err := session.RequireManager(); err != nil {
		return nil, err
	}
	next, err := reservation.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	return c.mutate(ctx, id, func(res *reservation.Reservation, now time.Time) (bool, error) {
		prev := res.Status()
		if err := res.TransitionTo(next, now); err != nil {
			return false, err
		}
		slog.InfoContext(ctx, "reservation status changed",
			"reservation_id", id,
			"from", prev,
			"to", next,
			"user_id", session.UserID)
		return true, nil
	})
}

func (c *reservationCommandsImpl) ChangePayment(
	ctx context.Context,
	session shared.Session,
	id uuid.UUID,
	paymentStatus string,
) (*queries.ReservationView, error) {
	if err := session.RequireManager(); err != nil {
		return nil, err
	}
	next, err := reservation.ParsePaymentStatus(paymentStatus)
	if err != nil {
		return nil, err
	}

	return c.mutate(ctx, id, func(res *reservation.Reservation, now time.Time) (bool, error) {
		return false, res.ChangePaymentStatus(next, now)
	})
}

// mutate locks the reservation, applies change and persists it. When change
// reports a status change a notification job is queued in the same transaction.
func (c *reservationCommandsImpl) mutate(
	ctx context.Context,
	id uuid.UUID,
	change func(res *reservation.Reservation, now time.Time) (bool, error),
) (*queries.ReservationView, error) {
	var view *queries.ReservationView
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().LockByID(ctx, id)
		if err != nil {
			return mapNotFound(err, queries.ErrReservationNotFound)
		}

		statusChanged, err := change(res, c.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Reservations().UpdateState(ctx, res); err != nil {
			return err
		}
		if statusChanged {
			if err := c.enqueue(ctx, tx, topicReservationStatusChanged, res); err != nil {
				return err
			}
		}

		view, err = queries.LoadReservationView(ctx, tx.Reads(), id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (c *reservationCommandsImpl) enqueue(ctx context.Context, tx shared.Tx, topic string, res *reservation.Reservation) error {
	payload, err := json.Marshal(map[string]any{
		"reservation_id": res.ID(),
		"car_id":         res.CarID(),
		"client_id":      res.ClientID(),
		"status":         res.Status(),
	})
	if err != nil {
		return errs.Wrap(err, "marshal notification payload")
	}
	return tx.Notifications().CreateJob(ctx, "email", topic, payload, c.clock.Now())
}

func requestHash(in CreateReservationInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func mapNotFound(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return err
}
