package repository

import (
	"context"
	"time"

	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/pgconv"
)

// NotificationRepository enqueues outbox jobs (booking confirmation mails).
// A separate worker drains the table; the API only ever inserts.
type NotificationRepository struct {
	db DBTX
}

func NewNotificationRepository(db DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

const insertJobSQL = `
INSERT INTO notification_jobs (kind, topic, payload, status, run_at, created_at)
VALUES ($1, $2, $3, 'queued', $4, now())`

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx, insertJobSQL, kind, topic, payload, pgconv.TimeToPgtype(runAt))
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
