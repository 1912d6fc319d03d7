package syncqueue

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"dispatch/internal/entities"
)

func isValidDriverID(driverID string) bool {
	return strings.TrimSpace(driverID) != ""
}

func isValidEntryID(entryID string) bool {
	return uuid.Validate(entryID) == nil
}

func isKnownAction(action entities.QueueActionType) bool {
	switch action {
	case entities.ActionClaim,
		entities.ActionRelease,
		entities.ActionAdvanceStatus,
		entities.ActionAttachProof,
		entities.ActionReportProblem:
		return true
	default:
		return false
	}
}

func validateEntry(driverID string, entry entities.OfflineQueueEntry) error {
	if !isValidEntryID(entry.ID) {
		return fmt.Errorf("%w: %q", ErrInvalidEntryID, entry.ID)
	}
	if entry.DriverID != driverID {
		return ErrDriverMismatch
	}
	if strings.TrimSpace(entry.OrderID) == "" {
		return ErrInvalidOrderID
	}
	if !isKnownAction(entry.ActionType) {
		return fmt.Errorf("%w: %s", ErrUnknownAction, entry.ActionType)
	}
	if entry.ClientTimestamp.IsZero() {
		return fmt.Errorf("%w: client timestamp is required", ErrMalformedPayload)
	}
	return nil
}

func unmarshalPayload(raw json.RawMessage, target any) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: payload is required", ErrMalformedPayload)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedPayload, err)
	}
	return nil
}
