package outcome

import (
	"context"
	"fmt"

	"github.com/AlekSi/pointer"
	"dispatch/internal/entities"
	storage "dispatch/internal/repository"
)

// Recorder attaches proof-of-delivery artifacts and problem reports, gated by
// the order state machine rules.
type Recorder struct {
	repository   Repository
	stateMachine OrderStateMachine
	txManager    TxManager
	retrier      retrier
}

func New(repository Repository, stateMachine OrderStateMachine, txManager TxManager) *Recorder {
	return &Recorder{
		repository:   repository,
		stateMachine: stateMachine,
		txManager:    txManager,
		retrier:      storage.NewStorageRetrier(),
	}
}

func (r *Recorder) AttachProof(ctx context.Context, orderID, driverID, artifactURL string, note *string) (*entities.DeliveryProof, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidID(driverID) {
		return nil, ErrInvalidDriverID
	}
	if !isValidID(artifactURL) {
		return nil, ErrMissingArtifact
	}

	var proof *entities.DeliveryProof
	err := r.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var createErr error
		proof, createErr = r.repository.CreateProof(ctx, entities.DeliveryProofModify{
			OrderID:     pointer.To(orderID),
			DriverID:    pointer.To(driverID),
			ArtifactURL: pointer.To(artifactURL),
			Note:        note,
		})
		return createErr
	})
	if err != nil {
		return nil, fmt.Errorf("attach proof to order %s: %w", orderID, err)
	}

	return proof, nil
}

// ReportProblem records the report and moves the order to problem in one
// transaction. The transition clears the lease, so the order can be re-triaged
// and claimed again after an operator returns it to ready.
func (r *Recorder) ReportProblem(ctx context.Context, orderID, driverID, description string) (*entities.ProblemReport, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidID(driverID) {
		return nil, ErrInvalidDriverID
	}
	if !isValidID(description) {
		return nil, ErrMissingDescription
	}

	var report *entities.ProblemReport
	// Транзиентный сбой ретраит транзакцию целиком: rollback делает повтор
	// безопасным.
	err := r.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return r.txManager.Do(ctx, func(ctx context.Context) error {
			created, err := r.repository.CreateProblemReport(ctx, entities.ProblemReportModify{
				OrderID:     pointer.To(orderID),
				DriverID:    pointer.To(driverID),
				Description: pointer.To(description),
			})
			if err != nil {
				return fmt.Errorf("create problem report: %w", err)
			}

			_, err = r.stateMachine.Transition(ctx, orderID, entities.OrderProblem, driverID, description)
			if err != nil {
				return fmt.Errorf("transition to problem: %w", err)
			}

			report = created
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}
