//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=events_test
package events

import (
	"context"

	"dispatch/internal/entities"
)

type (
	ExecuteFn      func(ctx context.Context, orderID, reason string) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
