//go:generate mockgen -source=factory.go -destination=./factory_mocks_test.go -package=status_handle_test
package status_handle

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/events"
)

type OrderStateMachine interface {
	Transition(ctx context.Context, orderID string, target entities.OrderStatusType, actor, reason string) (*entities.Order, error)
}

// StatusHandlerFactory maps commerce-requested statuses to state machine
// calls. Driver-controlled statuses (delivering, delivered, problem) are not
// listed: the commerce side cannot request them.
type StatusHandlerFactory struct {
	stateMachine OrderStateMachine
	actor        string
}

func NewStatusHandlerFactory(stateMachine OrderStateMachine, actor string) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		stateMachine: stateMachine,
		actor:        actor,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (events.ExecuteFn, error) {
	switch status {
	case entities.OrderPreparing:
		return f.transitionHandler(entities.OrderPreparing), nil
	case entities.OrderReady:
		return f.transitionHandler(entities.OrderReady), nil
	case entities.OrderCancelled:
		return f.transitionHandler(entities.OrderCancelled), nil
	default:
		return nil, fmt.Errorf("%w: %s", events.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) transitionHandler(target entities.OrderStatusType) events.ExecuteFn {
	return func(ctx context.Context, orderID, reason string) error {
		_, err := f.stateMachine.Transition(ctx, orderID, target, f.actor, reason)
		if err != nil {
			return fmt.Errorf("transition order %s to %s: %w", orderID, target, err)
		}
		return nil
	}
}
