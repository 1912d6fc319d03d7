package syncqueue

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	queueservice "dispatch/internal/service/syncqueue"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const entryColumns = "id, driver_id, order_id, action_type, payload, client_timestamp, sync_status, failure_reason, acknowledged_at, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, entryID string) (*entities.OfflineQueueEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM offline_queue_entries
		WHERE id = $1
	`

	var entryDB QueueEntryDB
	err := r.querier.QueryRow(ctx, query, entryID).Scan(
		&entryDB.ID,
		&entryDB.DriverID,
		&entryDB.OrderID,
		&entryDB.ActionType,
		&entryDB.Payload,
		&entryDB.ClientTimestamp,
		&entryDB.SyncStatus,
		&entryDB.FailureReason,
		&entryDB.AcknowledgedAt,
		&entryDB.CreatedAt,
		&entryDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, queueservice.ErrEntryNotFound
		}
		return nil, repository.Unavailable("queue repository get", err)
	}

	return ToDomain(&entryDB), nil
}

func (r *Repository) Create(ctx context.Context, entry entities.OfflineQueueEntry) (*entities.OfflineQueueEntry, error) {
	query := `
		INSERT INTO offline_queue_entries
			(id, driver_id, order_id, action_type, payload, client_timestamp, sync_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + entryColumns + `
	`

	var entryDB QueueEntryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		entry.ID,
		entry.DriverID,
		entry.OrderID,
		entry.ActionType.String(),
		entry.Payload,
		entry.ClientTimestamp,
		entry.SyncStatus.String(),
	).Scan(
		&entryDB.ID,
		&entryDB.DriverID,
		&entryDB.OrderID,
		&entryDB.ActionType,
		&entryDB.Payload,
		&entryDB.ClientTimestamp,
		&entryDB.SyncStatus,
		&entryDB.FailureReason,
		&entryDB.AcknowledgedAt,
		&entryDB.CreatedAt,
		&entryDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("entry %s: %w", entry.ID, queueservice.ErrEntryAlreadyRecorded)
		}
		return nil, repository.Unavailable("queue repository create", err)
	}

	return ToDomain(&entryDB), nil
}

func (r *Repository) Update(ctx context.Context, entryModify entities.OfflineQueueEntryModify) (*entities.OfflineQueueEntry, error) {
	builder := qb.
		Update("offline_queue_entries")

	if entryModify.SyncStatus != nil {
		builder = builder.Set("sync_status", entryModify.SyncStatus.String())
	}
	if entryModify.FailureReason != nil {
		builder = builder.Set("failure_reason", *entryModify.FailureReason)
	}
	if entryModify.AcknowledgedAt != nil {
		builder = builder.Set("acknowledged_at", *entryModify.AcknowledgedAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": entryModify.ID}).
		Suffix("RETURNING " + entryColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected queue repository update error: %w", err)
	}

	var entryDB QueueEntryDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&entryDB.ID,
		&entryDB.DriverID,
		&entryDB.OrderID,
		&entryDB.ActionType,
		&entryDB.Payload,
		&entryDB.ClientTimestamp,
		&entryDB.SyncStatus,
		&entryDB.FailureReason,
		&entryDB.AcknowledgedAt,
		&entryDB.CreatedAt,
		&entryDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, queueservice.ErrEntryNotFound
		}
		return nil, repository.Unavailable("queue repository update", err)
	}

	return ToDomain(&entryDB), nil
}

// MarkAcknowledged flips finalized entries of one driver to acknowledged.
// Pending entries are skipped: their outcome has not been delivered yet.
func (r *Repository) MarkAcknowledged(ctx context.Context, driverID string, entryIDs []string, at time.Time) (int64, error) {
	builder := qb.
		Update("offline_queue_entries").
		Set("acknowledged_at", at).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"driver_id": driverID, "id": entryIDs}).
		Where(sq.NotEq{"sync_status": entities.SyncPending.String()}).
		Where(sq.Eq{"acknowledged_at": nil})

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected queue repository ack error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, repository.Unavailable("queue repository ack", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) DeleteAcknowledgedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM offline_queue_entries
		WHERE acknowledged_at IS NOT NULL
		  AND acknowledged_at < $1
	`

	result, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, repository.Unavailable("queue repository purge", err)
	}

	return result.RowsAffected(), nil
}
