package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUnavailable separates storage-layer failures (timeouts, connection
// loss) from business outcomes, so callers can tell "try again" apart from
// "this action is invalid".
var ErrUnavailable = errors.New("storage unavailable")

// Unavailable wraps a low-level storage error so that both ErrUnavailable
// and the driver error stay matchable in the chain.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrUniqueViolation      = "23505"
	PgErrSerializationFailure = "40001"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
