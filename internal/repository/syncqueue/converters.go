package syncqueue

import "dispatch/internal/entities"

func ToDomain(e *QueueEntryDB) *entities.OfflineQueueEntry {
	if e == nil {
		return nil
	}
	return &entities.OfflineQueueEntry{
		ID:              e.ID,
		DriverID:        e.DriverID,
		OrderID:         e.OrderID,
		ActionType:      entities.QueueActionType(e.ActionType),
		Payload:         e.Payload,
		ClientTimestamp: e.ClientTimestamp,
		SyncStatus:      entities.SyncStatusType(e.SyncStatus),
		FailureReason:   e.FailureReason,
		AcknowledgedAt:  e.AcknowledgedAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
