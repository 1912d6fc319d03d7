//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// StatusUpdate describes one conditional status write. The repository applies
// it as a single UPDATE guarded by the listed predicates, so two coordinator
// instances racing on the same order cannot both win.
type StatusUpdate struct {
	OrderID string
	From    entities.OrderStatusType
	To      entities.OrderStatusType

	// RequireHolder, when set, additionally demands a live lease held by this
	// driver at write time.
	RequireHolder *string

	ClearLease  bool
	ClearDriver bool
}

type Repository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	UpdateStatus(ctx context.Context, update StatusUpdate) (*entities.Order, error)
}

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.StatusChangedEvent) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
