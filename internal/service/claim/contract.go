//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=claim_test
package claim

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	// ClaimLease is the single conditional write behind Claim: it succeeds
	// only when the row is still ready and carries no live lease. On a lost
	// race the repository returns AlreadyClaimedError with the current
	// holder, never a silent overwrite.
	ClaimLease(ctx context.Context, orderID, driverID string, lockedAt, expiresAt time.Time) (*entities.Lease, error)

	RenewLease(ctx context.Context, orderID, driverID string, expiresAt time.Time) (*entities.Lease, error)

	// ReleaseLease clears the lease iff held by driverID. Zero rows affected
	// is not an error: release is idempotent.
	ReleaseLease(ctx context.Context, orderID, driverID string) error

	CountClaimableByArea(ctx context.Context, area string) ([]entities.AreaOrderCount, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
