package syncqueue

import "errors"

var (
	ErrInvalidDriverID  = errors.New("invalid driver id")
	ErrInvalidEntryID   = errors.New("entry id must be a uuid")
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrDriverMismatch   = errors.New("entry driver does not match authenticated driver")
	ErrUnknownAction    = errors.New("unknown action type")
	ErrMalformedPayload = errors.New("malformed action payload")
	ErrEmptyBatch       = errors.New("empty entry batch")
	ErrBatchTooLarge    = errors.New("entry batch exceeds the configured limit")

	ErrEntryNotFound        = errors.New("queue entry not found")
	ErrEntryAlreadyRecorded = errors.New("queue entry already recorded")
)
