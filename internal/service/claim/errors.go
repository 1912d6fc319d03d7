package claim

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidDriverID      = errors.New("invalid driver id")
	ErrInvalidLeaseDuration = errors.New("invalid lease duration")
	ErrEmptyBatch           = errors.New("empty order id batch")

	ErrOrderNotFound  = errors.New("order not found")
	ErrAlreadyClaimed = errors.New("order already claimed")
	ErrNotClaimable   = errors.New("order is not claimable")
	ErrLockExpired    = errors.New("claim lease expired")
	ErrNotOwner       = errors.New("lease held by another driver")
)

// AlreadyClaimedError carries the current holder so the client can show who
// owns the order and when the lease runs out.
type AlreadyClaimedError struct {
	OrderID   string
	HolderID  string
	ExpiresAt time.Time
}

func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("order %s already claimed by %s until %s",
		e.OrderID, e.HolderID, e.ExpiresAt.Format(time.RFC3339))
}

func (e *AlreadyClaimedError) Is(target error) bool {
	return target == ErrAlreadyClaimed
}
