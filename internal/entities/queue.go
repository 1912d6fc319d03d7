package entities

import (
	"encoding/json"
	"time"
)

type QueueActionType string

const (
	ActionClaim         QueueActionType = "claim"
	ActionRelease       QueueActionType = "release"
	ActionAdvanceStatus QueueActionType = "advanceStatus"
	ActionAttachProof   QueueActionType = "attachProof"
	ActionReportProblem QueueActionType = "reportProblem"
)

func (a QueueActionType) String() string {
	return string(a)
}

type SyncStatusType string

const (
	SyncPending  SyncStatusType = "pending"
	SyncApplied  SyncStatusType = "applied"
	SyncRejected SyncStatusType = "rejected"
	SyncConflict SyncStatusType = "conflict"
)

func (s SyncStatusType) String() string {
	return string(s)
}

// OfflineQueueEntry is one driver action recorded while the mobile client was
// disconnected. ID is generated by the client and doubles as the idempotency
// key: the same entry resubmitted after a dropped acknowledgment is answered
// from the stored outcome instead of being applied again.
type OfflineQueueEntry struct {
	ID              string
	DriverID        string
	OrderID         string
	ActionType      QueueActionType
	Payload         json.RawMessage
	ClientTimestamp time.Time
	SyncStatus      SyncStatusType
	FailureReason   *string
	AcknowledgedAt  *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OfflineQueueEntryModify struct {
	ID             *string
	SyncStatus     *SyncStatusType
	FailureReason  *string
	AcknowledgedAt *time.Time
}

// EntryOutcome is the per-entry reconciliation result returned to the client.
// On conflict Order carries the authoritative snapshot so the client UI can
// refresh local state rather than silently dropping the offline action.
type EntryOutcome struct {
	EntryID    string
	SyncStatus SyncStatusType
	Reason     *string
	Order      *Order
}
