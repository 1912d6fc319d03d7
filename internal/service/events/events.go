package events

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

// CommerceActor помечает транзишены, инициированные commerce-стороной,
// а не конкретным водителем.
const CommerceActor = "commerce"

// Service applies commerce-side status requests (order paid, kitchen packed,
// operator re-triage, cancellation) through the same order state machine the
// driver path uses.
type Service struct {
	statusFactory HandlerFactory
}

func New(statusFactory HandlerFactory) *Service {
	return &Service{
		statusFactory: statusFactory,
	}
}

func (s *Service) ProcessStatusRequest(ctx context.Context, orderModify entities.OrderModify, reason string) error {
	if orderModify.ID == nil || orderModify.Status == nil {
		return ErrMissingFields
	}

	executeFn, err := s.statusFactory.GetHandler(*orderModify.Status)
	if err != nil {
		// статусы, которыми управляет только водитель, просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return nil
		}
		return err
	}

	if err := executeFn(ctx, *orderModify.ID, reason); err != nil {
		return fmt.Errorf("apply status request %s for order %s: %w", *orderModify.Status, *orderModify.ID, err)
	}

	return nil
}
