//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lease_renew_post_test
package lease_renew_post

import (
	"context"
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
	Renew(ctx context.Context, orderID, driverID string) (*entities.Lease, error)
}

type LeaseRenewRequest struct {
	OrderID string `json:"order_id"`
}

type LeaseRenewResponse struct {
	OrderID       string    `json:"order_id"`
	LockExpiresAt time.Time `json:"lock_expires_at"`
}
