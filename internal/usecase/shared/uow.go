package shared

import (
	"context"
	"time"

	"fleetdesk/internal/domain/car"
	"fleetdesk/internal/domain/client"
	"fleetdesk/internal/domain/interval"
	"fleetdesk/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for consistent multi-table snapshots
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, r Reads) error) error
}

type Tx interface {
	Cars() CarRepository
	Clients() ClientReader
	Reservations() ReservationRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() Reads
}

type Reads interface {
	Cars() CarReader
	Clients() ClientReader
	Reservations() ReservationReader
}

type CarReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*car.Car, error)
	FindAll(ctx context.Context) ([]*car.Car, error)
}

type ClientReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*client.Client, error)
	FindAll(ctx context.Context) ([]*client.Client, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*client.Client, error)
}

type ReservationReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	FindByCar(ctx context.Context, carID uuid.UUID) ([]*reservation.Reservation, error)
	FindIntersecting(ctx context.Context, period interval.Interval) ([]*reservation.Reservation, error)
	FindAll(ctx context.Context) ([]*reservation.Reservation, error)
}

type CarRepository interface {
	// LockByID takes a row lock so concurrent bookings of one car serialize.
	LockByID(ctx context.Context, id uuid.UUID) (*car.Car, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	LockByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	FindByCar(ctx context.Context, carID uuid.UUID) ([]*reservation.Reservation, error)
	UpdateState(ctx context.Context, r *reservation.Reservation) error
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key already exists for the user.
	TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	Complete(ctx context.Context, key, userID, reservationID uuid.UUID) error
	ClaimExpired(ctx context.Context, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error)
	Release(ctx context.Context, key, userID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
