//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=syncqueue_test
package syncqueue

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, entryID string) (*entities.OfflineQueueEntry, error)
	Create(ctx context.Context, entry entities.OfflineQueueEntry) (*entities.OfflineQueueEntry, error)
	Update(ctx context.Context, entryModify entities.OfflineQueueEntryModify) (*entities.OfflineQueueEntry, error)

	// MarkAcknowledged flips entries of one driver to acknowledged; entries
	// stay stored until the retention purge removes them.
	MarkAcknowledged(ctx context.Context, driverID string, entryIDs []string, at time.Time) (int64, error)
	DeleteAcknowledgedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type OrderProvider interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
}

type ClaimService interface {
	Claim(ctx context.Context, orderID, driverID string, leaseDuration time.Duration) (*entities.Lease, error)
	Release(ctx context.Context, orderID, driverID string) error
	LeaseDuration() time.Duration
}

type OrderStateMachine interface {
	Transition(ctx context.Context, orderID string, target entities.OrderStatusType, actor, reason string) (*entities.Order, error)
}

type OutcomeRecorder interface {
	AttachProof(ctx context.Context, orderID, driverID, artifactURL string, note *string) (*entities.DeliveryProof, error)
	ReportProblem(ctx context.Context, orderID, driverID, description string) (*entities.ProblemReport, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
