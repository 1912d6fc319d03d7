package repository

import (
	"errors"
	"time"

	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	retryInitialInterval = 50 * time.Millisecond
	retryMaxInterval     = 250 * time.Millisecond
	retryRandomization   = 0.5
	retryMultiplier      = 2.0
	retryMaxRetries      = 1
)

// IsTransient reports whether err is a storage-layer failure worth one more
// attempt, as opposed to a business rejection that repeating cannot change.
func IsTransient(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// NewStorageRetrier returns the retry policy shared by all service-layer
// repository calls: a transient failure is retried exactly once with a short
// backoff before ErrUnavailable surfaces to the handler.
func NewStorageRetrier() *backoff_adapter.Retrier {
	return backoff_adapter.New(retrierconfig.Config{
		InitialInterval: retryInitialInterval,
		MaxInterval:     retryMaxInterval,
		Randomization:   retryRandomization,
		Multiplier:      retryMultiplier,
		MaxRetries:      retryMaxRetries,
		ShouldRetry:     IsTransient,
	})
}
