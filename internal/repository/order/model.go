package order

import "time"

type OrderDB struct {
	ID            string
	Status        string
	DriverID      *string
	LockedBy      *string
	LockedAt      *time.Time
	LockExpiresAt *time.Time
	Area          string
	TotalCents    int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type LineItemDB struct {
	ProductID  string
	Name       string
	Quantity   int32
	PriceCents int64
}

type LeaseDB struct {
	OrderID   string
	LockedBy  string
	LockedAt  time.Time
	ExpiresAt time.Time
}
