//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transition_post_test
package transition_post

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
	Transition(ctx context.Context, orderID string, target entities.OrderStatusType, actor, reason string) (*entities.Order, error)
}

type TransitionRequest struct {
	OrderID      string `json:"order_id"`
	TargetStatus string `json:"target_status"`
	Reason       string `json:"reason,omitempty"`
}

type TransitionResponse struct {
	OrderID       string     `json:"order_id"`
	Status        string     `json:"status"`
	DriverID      *string    `json:"driver_id,omitempty"`
	LockExpiresAt *time.Time `json:"lock_expires_at,omitempty"`
}
