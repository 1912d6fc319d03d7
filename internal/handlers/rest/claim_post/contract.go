//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=claim_post_test
package claim_post

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
	LeaseDuration() time.Duration
	BatchClaim(ctx context.Context, orderIDs []string, driverID string, leaseDuration time.Duration) ([]entities.ClaimOutcome, error)
}

type ClaimRequest struct {
	OrderIDs []string `json:"order_ids"`
}

type ClaimResponse struct {
	Results []ClaimResult `json:"results"`
}

type ClaimResult struct {
	OrderID       string     `json:"order_id"`
	Result        string     `json:"result"`
	LockExpiresAt *time.Time `json:"lock_expires_at,omitempty"`
	HolderID      *string    `json:"holder_id,omitempty"`
}
