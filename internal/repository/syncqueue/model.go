package syncqueue

import (
	"encoding/json"
	"time"
)

type QueueEntryDB struct {
	ID              string
	DriverID        string
	OrderID         string
	ActionType      string
	Payload         json.RawMessage
	ClientTimestamp time.Time
	SyncStatus      string
	FailureReason   *string
	AcknowledgedAt  *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
