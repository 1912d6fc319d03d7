//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_auth_test
package driver_auth

import "dispatch/pkg/logger"

type TokenVerifier interface {
	VerifyToken(tokenString string) (string, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
