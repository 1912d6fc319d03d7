package entities

import "time"

type Order struct {
	ID            string
	Status        OrderStatusType
	DriverID      *string
	LockedBy      *string
	LockedAt      *time.Time
	LockExpiresAt *time.Time
	Area          string
	Items         []LineItem
	TotalCents    int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasLiveLease reports whether the order carries a lease that has not yet
// expired at the given instant. Expiry is lazy: an expired lease is treated
// as absent everywhere, no background process clears it. A lease expiring
// exactly at now is still live, mirroring the lock_expires_at >= NOW()
// predicate in SQL.
func (o *Order) HasLiveLease(now time.Time) bool {
	return o.LockedBy != nil && o.LockExpiresAt != nil && !o.LockExpiresAt.Before(now)
}

// LineItem приходит из commerce-части платформы, координатор его не изменяет.
type LineItem struct {
	ProductID  string
	Name       string
	Quantity   int32
	PriceCents int64
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderPreparing  OrderStatusType = "preparing"
	OrderReady      OrderStatusType = "ready"
	OrderDelivering OrderStatusType = "delivering"
	OrderDelivered  OrderStatusType = "delivered"
	OrderProblem    OrderStatusType = "problem"
	OrderCancelled  OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type OrderModify struct {
	ID            *string
	Status        *OrderStatusType
	DriverID      *string
	LockedBy      *string
	LockedAt      *time.Time
	LockExpiresAt *time.Time
}
