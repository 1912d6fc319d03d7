package claim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	storage "dispatch/internal/repository"
)

// Manager arbitrates exclusive, time-bounded claim leases on orders. It is
// stateless: every decision is a conditional write against the repository, so
// any number of coordinator instances can run behind a load balancer.
type Manager struct {
	repository    Repository
	retrier       retrier
	leaseDuration time.Duration
}

func New(repository Repository, leaseDuration time.Duration) *Manager {
	return &Manager{
		repository:    repository,
		retrier:       storage.NewStorageRetrier(),
		leaseDuration: leaseDuration,
	}
}

// LeaseDuration возвращает сконфигурированный срок lease, его же использует
// офлайн-реплей claim-действий.
func (m *Manager) LeaseDuration() time.Duration {
	return m.leaseDuration
}

// Claim takes a lease on a single ready order. A lease with expiry in the
// past counts as absent, any driver may take over. Claim never advances the
// order status: claiming a batch and starting a particular delivery are
// separate operations.
func (m *Manager) Claim(ctx context.Context, orderID, driverID string, leaseDuration time.Duration) (*entities.Lease, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidDriverID(driverID) {
		return nil, ErrInvalidDriverID
	}
	if leaseDuration <= 0 {
		return nil, ErrInvalidLeaseDuration
	}

	now := time.Now().UTC()
	var lease *entities.Lease
	err := m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var claimErr error
		lease, claimErr = m.repository.ClaimLease(ctx, orderID, driverID, now, now.Add(leaseDuration))
		return claimErr
	})
	if err != nil {
		observeClaim(err)
		return nil, fmt.Errorf("claim order %s: %w", orderID, err)
	}

	observeClaim(nil)
	return lease, nil
}

// BatchClaim attempts each order independently and reports a granular
// per-order result set. One contested order never fails the whole batch.
func (m *Manager) BatchClaim(ctx context.Context, orderIDs []string, driverID string, leaseDuration time.Duration) ([]entities.ClaimOutcome, error) {
	if len(orderIDs) == 0 {
		return nil, ErrEmptyBatch
	}
	if !isValidDriverID(driverID) {
		return nil, ErrInvalidDriverID
	}

	outcomes := make([]entities.ClaimOutcome, 0, len(orderIDs))
	for _, orderID := range orderIDs {
		lease, err := m.Claim(ctx, orderID, driverID, leaseDuration)
		if err == nil {
			outcomes = append(outcomes, entities.ClaimOutcome{
				OrderID: orderID,
				Result:  entities.ClaimGranted,
				Lease:   lease,
			})
			continue
		}

		outcome := entities.ClaimOutcome{OrderID: orderID}
		var alreadyClaimed *AlreadyClaimedError
		switch {
		case errors.As(err, &alreadyClaimed):
			outcome.Result = entities.ClaimAlreadyTaken
			outcome.HolderID = &alreadyClaimed.HolderID
			outcome.LockExpiresAt = &alreadyClaimed.ExpiresAt
		case errors.Is(err, ErrNotClaimable):
			outcome.Result = entities.ClaimNotClaimable
		case errors.Is(err, ErrOrderNotFound):
			outcome.Result = entities.ClaimOrderMissing
		case errors.Is(err, ErrInvalidOrderID):
			outcome.Result = entities.ClaimRejected
		default:
			// Ошибка хранилища прерывает батч: частичный результат уже
			// применён и не откатывается.
			return outcomes, fmt.Errorf("batch claim: %w", err)
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

// Renew extends the caller's lease from now. Renewal is an explicit client
// call, there is no background heartbeat.
func (m *Manager) Renew(ctx context.Context, orderID, driverID string) (*entities.Lease, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidDriverID(driverID) {
		return nil, ErrInvalidDriverID
	}

	now := time.Now().UTC()
	var lease *entities.Lease
	err := m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var renewErr error
		lease, renewErr = m.repository.RenewLease(ctx, orderID, driverID, now.Add(m.leaseDuration))
		return renewErr
	})
	if err != nil {
		return nil, fmt.Errorf("renew lease on order %s: %w", orderID, err)
	}

	return lease, nil
}

// Release clears the lease. Releasing an order the driver no longer holds
// succeeds silently.
func (m *Manager) Release(ctx context.Context, orderID, driverID string) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}
	if !isValidDriverID(driverID) {
		return ErrInvalidDriverID
	}

	err := m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return m.repository.ReleaseLease(ctx, orderID, driverID)
	})
	if err != nil {
		return fmt.Errorf("release order %s: %w", orderID, err)
	}
	return nil
}

// ClaimableOrderCounts is the read-only tally behind GET /order-counts.
// Area is an optional filter; empty means all areas.
func (m *Manager) ClaimableOrderCounts(ctx context.Context, area string) ([]entities.AreaOrderCount, error) {
	var counts []entities.AreaOrderCount
	err := m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var countErr error
		counts, countErr = m.repository.CountClaimableByArea(ctx, area)
		return countErr
	})
	if err != nil {
		return nil, fmt.Errorf("count claimable orders: %w", err)
	}
	return counts, nil
}
