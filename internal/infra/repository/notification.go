package repository

import (
	"context"
	"time"

	"fleetdesk/internal/infra"
	"fleetdesk/internal/usecase/shared"
)

// NotificationRepository writes to the notification_jobs outbox drained by the mailer.
type NotificationRepository struct {
	db shared.DBTX
}

func NewNotificationRepository(db shared.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx, `INSERT INTO notification_jobs (kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)`, kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
