//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=release_post_test
package release_post

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Release(ctx context.Context, orderID, driverID string) error
}

type ReleaseRequest struct {
	OrderID string `json:"order_id"`
}

type ReleaseResponse struct {
	OrderID  string `json:"order_id"`
	Released bool   `json:"released"`
}
