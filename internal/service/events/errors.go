package events

import "errors"

var (
	ErrMissingFields   = errors.New("order id and status are required")
	ErrUndefinedStatus = errors.New("status is not commerce-controlled")
)
