//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sync_post_test
package sync_post

import (
	"context"
	"encoding/json"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Reconcile(ctx context.Context, driverID string, entries []entities.OfflineQueueEntry) ([]entities.EntryOutcome, error)
}

type SyncRequest struct {
	Entries []SyncEntry `json:"entries"`
}

type SyncEntry struct {
	ID              string          `json:"id"`
	OrderID         string          `json:"order_id"`
	ActionType      string          `json:"action_type"`
	Payload         json.RawMessage `json:"payload,omitempty"`
	ClientTimestamp time.Time       `json:"client_timestamp"`
}

type SyncResponse struct {
	Results []SyncResult `json:"results"`
}

type SyncResult struct {
	EntryID    string         `json:"entry_id"`
	SyncStatus string         `json:"sync_status"`
	Reason     *string        `json:"reason,omitempty"`
	Order      *OrderSnapshot `json:"order,omitempty"`
}

type OrderSnapshot struct {
	OrderID       string     `json:"order_id"`
	Status        string     `json:"status"`
	DriverID      *string    `json:"driver_id,omitempty"`
	LockExpiresAt *time.Time `json:"lock_expires_at,omitempty"`
}
