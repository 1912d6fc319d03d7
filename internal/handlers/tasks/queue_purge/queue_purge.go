package queue_purge

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	PurgeAcknowledged(ctx context.Context, retention time.Duration) (int64, error)
}

// QueuePurge удаляет подтверждённые записи offline-очереди старше retention.
// Неподтверждённые записи не трогает: клиент ещё может за ними вернуться.
type QueuePurge struct {
	log       logger.Logger
	service   Service
	interval  time.Duration
	retention time.Duration
}

func NewQueuePurge(log logger.Logger, service Service, interval, retention time.Duration) *QueuePurge {
	return &QueuePurge{
		log:       log,
		service:   service,
		interval:  interval,
		retention: retention,
	}
}

func (q *QueuePurge) TTL() time.Duration {
	return q.interval
}

func (q *QueuePurge) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, q.interval)
	defer cancel()

	rowsAffected, err := q.service.PurgeAcknowledged(ctxWithTimeout, q.retention)

	if rowsAffected > 0 {
		q.log.With(
			logger.NewField("purged_entries", rowsAffected),
		).Info("queue purge")
	}

	return err
}

func (q *QueuePurge) Info() string {
	return "queue purge"
}
