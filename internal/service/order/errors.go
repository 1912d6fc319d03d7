package order

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrInvalidStatus  = errors.New("unknown order status")
	ErrMissingActor   = errors.New("actor is required")
	ErrOrderNotFound  = errors.New("order not found")

	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotOwner          = errors.New("order is claimed by another driver")
	ErrLockExpired       = errors.New("claim lease expired")
)
