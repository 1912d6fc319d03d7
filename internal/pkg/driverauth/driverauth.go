package driverauth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrMissingDriver = errors.New("token has no driver id")
)

type contextKey struct{}

var driverIDKey contextKey

// Verifier проверяет HS256 токены водителей и достаёт driver_id из claims.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

type driverClaims struct {
	DriverID string `json:"driver_id"`
	jwt.RegisteredClaims
}

func (v *Verifier) VerifyToken(tokenString string) (string, error) {
	claims := &driverClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.DriverID == "" {
		return "", ErrMissingDriver
	}

	return claims.DriverID, nil
}

func WithDriverID(ctx context.Context, driverID string) context.Context {
	return context.WithValue(ctx, driverIDKey, driverID)
}

func DriverIDFromContext(ctx context.Context) (string, bool) {
	driverID, ok := ctx.Value(driverIDKey).(string)
	return driverID, ok
}
