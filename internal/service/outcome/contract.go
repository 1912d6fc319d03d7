//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outcome_test
package outcome

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	// CreateProof inserts only when the order is still delivering and owned
	// by the reporting driver; the predicate lives in the INSERT itself, so
	// a racing transition cannot slip a proof past the gate.
	CreateProof(ctx context.Context, proofModify entities.DeliveryProofModify) (*entities.DeliveryProof, error)

	// CreateProblemReport inserts only while the order is delivering.
	CreateProblemReport(ctx context.Context, reportModify entities.ProblemReportModify) (*entities.ProblemReport, error)
}

type OrderStateMachine interface {
	Transition(ctx context.Context, orderID string, target entities.OrderStatusType, actor, reason string) (*entities.Order, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
