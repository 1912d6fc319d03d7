package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"dispatch/internal/entities"
	storage "dispatch/internal/repository"
	"dispatch/pkg/logger"
)

// StateMachine validates and applies status transitions for a single order.
// All lease and status writes go through conditional repository updates, the
// service itself keeps no state between calls.
type StateMachine struct {
	repository Repository
	publisher  EventPublisher
	retrier    retrier
	log        serviceLogger
}

func New(repository Repository, publisher EventPublisher, log serviceLogger) *StateMachine {
	return &StateMachine{
		repository: repository,
		publisher:  publisher,
		retrier:    storage.NewStorageRetrier(),
		log:        log.With(),
	}
}

func (s *StateMachine) Transition(ctx context.Context, orderID string, target entities.OrderStatusType, actor, reason string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidActor(actor) {
		return nil, ErrMissingActor
	}
	if !isKnownStatus(target) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, target)
	}

	var current *entities.Order
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var getErr error
		current, getErr = s.repository.GetByID(ctx, orderID)
		return getErr
	})
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if !CanTransition(current.Status, target) {
		return nil, fmt.Errorf("%s -> %s: %w", current.Status, target, ErrInvalidTransition)
	}

	update := newStatusUpdate(orderID, current.Status, target)

	// delivering может начать только держатель живой lease. Проверка здесь
	// даёт точную ошибку, предикат в SQL закрывает гонку.
	if target == entities.OrderDelivering {
		now := time.Now().UTC()
		switch {
		case current.LockedBy == nil || *current.LockedBy != actor:
			return nil, ErrNotOwner
		case !current.HasLiveLease(now):
			return nil, ErrLockExpired
		}
		update.RequireHolder = &actor
	}

	var updated *entities.Order
	err = s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var updateErr error
		updated, updateErr = s.repository.UpdateStatus(ctx, update)
		return updateErr
	})
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	event := entities.StatusChangedEvent{
		EventID:        uuid.NewString(),
		OrderID:        orderID,
		PreviousStatus: current.Status,
		NewStatus:      target,
		Actor:          actor,
		Reason:         reason,
		OccurredAt:     time.Now().UTC(),
	}
	if err := s.publisher.PublishStatusChanged(ctx, event); err != nil {
		// Транзишен уже закоммичен; потеря уведомления допустима,
		// exactly-once доставки нет.
		s.log.Error("publish status changed event",
			logger.NewField("order", orderID),
			logger.NewField("status", target.String()),
			logger.NewField("error", err),
		)
	}

	return updated, nil
}

func newStatusUpdate(orderID string, from, to entities.OrderStatusType) StatusUpdate {
	return StatusUpdate{
		OrderID:     orderID,
		From:        from,
		To:          to,
		ClearLease:  clearsLease(to),
		ClearDriver: to == entities.OrderCancelled,
	}
}
