//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sync_ack_post_test
package sync_ack_post

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Ack(ctx context.Context, driverID string, entryIDs []string) (int64, error)
}

type SyncAckRequest struct {
	EntryIDs []string `json:"entry_ids"`
}

type SyncAckResponse struct {
	Acknowledged int64 `json:"acknowledged"`
}
