package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/claim"
	orderservice "dispatch/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = "id, status, driver_id, locked_by, locked_at, lock_expires_at, area, total_cents, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&orderDB.ID,
		&orderDB.Status,
		&orderDB.DriverID,
		&orderDB.LockedBy,
		&orderDB.LockedAt,
		&orderDB.LockExpiresAt,
		&orderDB.Area,
		&orderDB.TotalCents,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, repository.Unavailable("order repository get", err)
	}

	items, err := r.getItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, items), nil
}

// UpdateStatus performs the conditional status write. The WHERE clause holds
// every invariant: a row that moved since the caller read it simply does not
// match and nothing is written.
func (r *Repository) UpdateStatus(ctx context.Context, update orderservice.StatusUpdate) (*entities.Order, error) {
	builder := qb.
		Update("orders").
		Set("status", update.To.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": update.OrderID, "status": update.From.String()})

	if update.ClearLease {
		builder = builder.
			Set("locked_by", nil).
			Set("locked_at", nil).
			Set("lock_expires_at", nil)
	}
	if update.ClearDriver {
		builder = builder.Set("driver_id", nil)
	}
	if update.RequireHolder != nil {
		builder = builder.
			Where(sq.Eq{"locked_by": *update.RequireHolder}).
			Where(sq.Expr("lock_expires_at >= NOW()"))
	}

	builder = builder.Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	var orderDB OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&orderDB.ID,
		&orderDB.Status,
		&orderDB.DriverID,
		&orderDB.LockedBy,
		&orderDB.LockedAt,
		&orderDB.LockExpiresAt,
		&orderDB.Area,
		&orderDB.TotalCents,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyStatusMiss(ctx, update)
		}
		return nil, repository.Unavailable("order repository update status", err)
	}

	return ToDomain(&orderDB, nil), nil
}

// classifyStatusMiss re-reads the row to explain why the conditional write
// matched nothing. The re-read is for error detail only, no state changes.
func (r *Repository) classifyStatusMiss(ctx context.Context, update orderservice.StatusUpdate) error {
	current, err := r.GetByID(ctx, update.OrderID)
	if err != nil {
		return err
	}

	if current.Status != update.From {
		return fmt.Errorf("order %s is %s, expected %s: %w",
			update.OrderID, current.Status, update.From, orderservice.ErrInvalidTransition)
	}

	if update.RequireHolder != nil {
		if current.LockedBy == nil || *current.LockedBy != *update.RequireHolder {
			return orderservice.ErrNotOwner
		}
		return orderservice.ErrLockExpired
	}

	return fmt.Errorf("order %s: %w", update.OrderID, orderservice.ErrInvalidTransition)
}

// ClaimLease is the single atomic claim write: status must still be ready
// and any existing lease must already be expired. Two racing drivers resolve
// here, in one UPDATE, not in application code.
func (r *Repository) ClaimLease(ctx context.Context, orderID, driverID string, lockedAt, expiresAt time.Time) (*entities.Lease, error) {
	query := `
		UPDATE orders
		SET driver_id = $2,
		    locked_by = $2,
		    locked_at = $3,
		    lock_expires_at = $4,
		    updated_at = NOW()
		WHERE id = $1
		  AND status = 'ready'
		  AND (locked_by IS NULL OR lock_expires_at < NOW())
		RETURNING id, locked_by, locked_at, lock_expires_at
	`

	var leaseDB LeaseDB
	err := r.querier.QueryRow(ctx, query, orderID, driverID, lockedAt, expiresAt).Scan(
		&leaseDB.OrderID,
		&leaseDB.LockedBy,
		&leaseDB.LockedAt,
		&leaseDB.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyClaimMiss(ctx, orderID)
		}
		return nil, repository.Unavailable("order repository claim lease", err)
	}

	return ToLeaseDomain(&leaseDB), nil
}

func (r *Repository) classifyClaimMiss(ctx context.Context, orderID string) error {
	query := `
		SELECT status, locked_by, lock_expires_at
		FROM orders
		WHERE id = $1
	`

	var (
		status        string
		lockedBy      *string
		lockExpiresAt *time.Time
	)
	err := r.querier.QueryRow(ctx, query, orderID).Scan(&status, &lockedBy, &lockExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return claim.ErrOrderNotFound
		}
		return repository.Unavailable("order repository classify claim", err)
	}

	if status != entities.OrderReady.String() {
		return fmt.Errorf("order status is %s: %w", status, claim.ErrNotClaimable)
	}

	if lockedBy != nil && lockExpiresAt != nil {
		return &claim.AlreadyClaimedError{
			OrderID:   orderID,
			HolderID:  *lockedBy,
			ExpiresAt: *lockExpiresAt,
		}
	}

	// Строка изменилась между неудачным UPDATE и перечитыванием.
	return fmt.Errorf("order %s: %w", orderID, claim.ErrNotClaimable)
}

func (r *Repository) RenewLease(ctx context.Context, orderID, driverID string, expiresAt time.Time) (*entities.Lease, error) {
	query := `
		UPDATE orders
		SET lock_expires_at = $3,
		    updated_at = NOW()
		WHERE id = $1
		  AND locked_by = $2
		  AND lock_expires_at >= NOW()
		RETURNING id, locked_by, locked_at, lock_expires_at
	`

	var leaseDB LeaseDB
	err := r.querier.QueryRow(ctx, query, orderID, driverID, expiresAt).Scan(
		&leaseDB.OrderID,
		&leaseDB.LockedBy,
		&leaseDB.LockedAt,
		&leaseDB.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyRenewMiss(ctx, orderID, driverID)
		}
		return nil, repository.Unavailable("order repository renew lease", err)
	}

	return ToLeaseDomain(&leaseDB), nil
}

func (r *Repository) classifyRenewMiss(ctx context.Context, orderID, driverID string) error {
	query := `
		SELECT locked_by, lock_expires_at
		FROM orders
		WHERE id = $1
	`

	var (
		lockedBy      *string
		lockExpiresAt *time.Time
	)
	err := r.querier.QueryRow(ctx, query, orderID).Scan(&lockedBy, &lockExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return claim.ErrOrderNotFound
		}
		return repository.Unavailable("order repository classify renew", err)
	}

	if lockedBy != nil && *lockedBy == driverID {
		return claim.ErrLockExpired
	}
	return claim.ErrNotOwner
}

// ReleaseLease clears the lease iff still held by the caller. Zero rows
// affected means the lease is already gone, which is a success: release is
// idempotent.
func (r *Repository) ReleaseLease(ctx context.Context, orderID, driverID string) error {
	query := `
		UPDATE orders
		SET driver_id = NULL,
		    locked_by = NULL,
		    locked_at = NULL,
		    lock_expires_at = NULL,
		    updated_at = NOW()
		WHERE id = $1
		  AND locked_by = $2
	`

	_, err := r.querier.Exec(ctx, query, orderID, driverID)
	if err != nil {
		return repository.Unavailable("order repository release lease", err)
	}

	return nil
}

// CountClaimableByArea is the tally behind GET /order-counts: ready orders
// with no live lease, grouped by area. Read-only, takes no locks.
func (r *Repository) CountClaimableByArea(ctx context.Context, area string) ([]entities.AreaOrderCount, error) {
	builder := qb.
		Select("area", "COUNT(*)").
		From("orders").
		Where(sq.Eq{"status": entities.OrderReady.String()}).
		Where(sq.Expr("(locked_by IS NULL OR lock_expires_at < NOW())"))

	if area != "" {
		builder = builder.Where(sq.Eq{"area": area})
	}

	builder = builder.
		GroupBy("area").
		OrderBy("area ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count claimable error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, repository.Unavailable("order repository count claimable", err)
	}
	defer rows.Close()

	counts := make([]entities.AreaOrderCount, 0)
	for rows.Next() {
		var count entities.AreaOrderCount
		if err := rows.Scan(&count.Area, &count.Count); err != nil {
			return nil, repository.Unavailable("order repository count claimable scan", err)
		}
		counts = append(counts, count)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Unavailable("order repository count claimable rows", err)
	}

	return counts, nil
}

func (r *Repository) getItems(ctx context.Context, orderID string) ([]LineItemDB, error) {
	query := `
		SELECT product_id, name, quantity, price_cents
		FROM order_items
		WHERE order_id = $1
		ORDER BY product_id ASC
	`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, repository.Unavailable("order repository get items", err)
	}
	defer rows.Close()

	var items []LineItemDB
	for rows.Next() {
		var item LineItemDB
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Quantity, &item.PriceCents); err != nil {
			return nil, repository.Unavailable("order repository get items scan", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.Unavailable("order repository get items rows", err)
	}

	return items, nil
}
