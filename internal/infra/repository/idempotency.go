package repository

import (
	"context"
	"time"

	"fleetdesk/internal/infra"
	"fleetdesk/internal/pkg/pgconv"
	"fleetdesk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyRepository struct {
	db shared.DBTX
}

func NewIdempotencyRepository(db shared.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (key, user_id) DO NOTHING`,
		key, userID, endpoint, requestHash, shared.IdempotencyProcessing, pgconv.TimeToPgtype(expiresAt))
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec := &shared.IdempotencyRecord{}
	var expiresAt pgtype.Timestamptz
	err := r.db.QueryRow(ctx, `SELECT key, user_id, status, request_hash, result_reservation_id, expires_at
		FROM idempotency_keys WHERE key = $1 AND user_id = $2`, key, userID).
		Scan(&rec.Key, &rec.UserID, &rec.Status, &rec.RequestHash, &rec.ResultReservationID, &expiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	rec.ExpiresAt = pgconv.TimeFromPgtype(expiresAt)
	return rec, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, key, userID, reservationID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE idempotency_keys
		SET status = $3, result_reservation_id = $4, updated_at = now()
		WHERE key = $1 AND user_id = $2`,
		key, userID, shared.IdempotencyCompleted, reservationID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	return nil
}

// ClaimExpired takes over a processing key whose owner never finished.
func (r *IdempotencyRepository) ClaimExpired(ctx context.Context, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE idempotency_keys
		SET request_hash = $3, expires_at = $4, updated_at = now()
		WHERE key = $1 AND user_id = $2 AND status = $5 AND expires_at <= now()`,
		key, userID, requestHash, pgconv.TimeToPgtype(expiresAt), shared.IdempotencyProcessing)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}
	return tag.RowsAffected(), nil
}

// Release drops a key whose request failed so the client can retry with it.
func (r *IdempotencyRepository) Release(ctx context.Context, key, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM idempotency_keys
		WHERE key = $1 AND user_id = $2 AND status = $3`,
		key, userID, shared.IdempotencyProcessing)
	if err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err)
	}
	return nil
}
