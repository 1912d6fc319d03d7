package outcome

import "errors"

var (
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidDriverID    = errors.New("invalid driver id")
	ErrMissingArtifact    = errors.New("artifact reference is required")
	ErrMissingDescription = errors.New("problem description is required")

	ErrOrderNotFound = errors.New("order not found")
	ErrNotPermitted  = errors.New("outcome not permitted in current order state")
)
