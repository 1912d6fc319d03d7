package entities

import "time"

// Lease is the (locked_by, locked_at, lock_expires_at) triple on an order.
// It is not a separate table, only a projection of the order row.
type Lease struct {
	OrderID   string
	DriverID  string
	LockedAt  time.Time
	ExpiresAt time.Time
}

type ClaimResultType string

const (
	ClaimGranted      ClaimResultType = "claimed"
	ClaimAlreadyTaken ClaimResultType = "already_claimed"
	ClaimNotClaimable ClaimResultType = "not_claimable"
	ClaimOrderMissing ClaimResultType = "not_found"
	// ClaimRejected is a malformed order id, not a lost race: the order was
	// never looked up.
	ClaimRejected ClaimResultType = "rejected"
)

func (r ClaimResultType) String() string {
	return string(r)
}

// ClaimOutcome is the per-order result of a batch claim. Batch claim is not
// all-or-nothing: each order is attempted independently and the driver gets
// whatever was still available.
type ClaimOutcome struct {
	OrderID       string
	Result        ClaimResultType
	Lease         *Lease
	HolderID      *string
	LockExpiresAt *time.Time
}

// AreaOrderCount is the read-only claimable-order tally for one delivery
// area. Computing it takes no lease and causes no side effects.
type AreaOrderCount struct {
	Area  string
	Count int64
}
