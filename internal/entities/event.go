package entities

import "time"

// StatusChangedEvent is published to the notification collaborator after a
// successful transition. Delivery is at-least-once; consumers deduplicate by
// EventID.
type StatusChangedEvent struct {
	EventID        string
	OrderID        string
	PreviousStatus OrderStatusType
	NewStatus      OrderStatusType
	Actor          string
	Reason         string
	OccurredAt     time.Time
}
