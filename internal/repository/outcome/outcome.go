package outcome

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	outcomeservice "dispatch/internal/service/outcome"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// CreateProof is an INSERT gated by a SELECT on the order row: the proof
// lands only if the order is still delivering and owned by the reporting
// driver. Zero rows means the gate failed, the re-read explains why.
func (r *Repository) CreateProof(ctx context.Context, proofModify entities.DeliveryProofModify) (*entities.DeliveryProof, error) {
	query := `
		INSERT INTO delivery_proofs (order_id, driver_id, artifact_url, note)
		SELECT o.id, $2, $3, $4
		FROM orders o
		WHERE o.id = $1
		  AND o.status = 'delivering'
		  AND o.driver_id = $2
		RETURNING id, order_id, driver_id, artifact_url, note, created_at
	`

	var proofDB DeliveryProofDB
	err := r.querier.QueryRow(
		ctx,
		query,
		proofModify.OrderID,
		proofModify.DriverID,
		proofModify.ArtifactURL,
		proofModify.Note,
	).Scan(
		&proofDB.ID,
		&proofDB.OrderID,
		&proofDB.DriverID,
		&proofDB.ArtifactURL,
		&proofDB.Note,
		&proofDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyGateMiss(ctx, proofModify.OrderID)
		}
		return nil, repository.Unavailable("outcome repository create proof", err)
	}

	return ToProofDomain(&proofDB), nil
}

// CreateProblemReport требует только delivering-статус: проблему может
// зафиксировать водитель и после истечения lease.
func (r *Repository) CreateProblemReport(ctx context.Context, reportModify entities.ProblemReportModify) (*entities.ProblemReport, error) {
	query := `
		INSERT INTO problem_reports (order_id, driver_id, description)
		SELECT o.id, $2, $3
		FROM orders o
		WHERE o.id = $1
		  AND o.status = 'delivering'
		RETURNING id, order_id, driver_id, description, created_at
	`

	var reportDB ProblemReportDB
	err := r.querier.QueryRow(
		ctx,
		query,
		reportModify.OrderID,
		reportModify.DriverID,
		reportModify.Description,
	).Scan(
		&reportDB.ID,
		&reportDB.OrderID,
		&reportDB.DriverID,
		&reportDB.Description,
		&reportDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyGateMiss(ctx, reportModify.OrderID)
		}
		return nil, repository.Unavailable("outcome repository create report", err)
	}

	return ToReportDomain(&reportDB), nil
}

func (r *Repository) classifyGateMiss(ctx context.Context, orderID *string) error {
	query := `
		SELECT 1
		FROM orders
		WHERE id = $1
	`

	var one int
	err := r.querier.QueryRow(ctx, query, orderID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return outcomeservice.ErrOrderNotFound
		}
		return repository.Unavailable("outcome repository classify", err)
	}

	return outcomeservice.ErrNotPermitted
}
