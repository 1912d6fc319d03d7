package entities

import "time"

// DeliveryProof is an append-only proof-of-delivery artifact. It can only be
// recorded while the reporting driver owns the order and the order is in
// delivering.
type DeliveryProof struct {
	ID          int64
	OrderID     string
	DriverID    string
	ArtifactURL string
	Note        *string
	CreatedAt   time.Time
}

type DeliveryProofModify struct {
	OrderID     *string
	DriverID    *string
	ArtifactURL *string
	Note        *string
}

// ProblemReport moves the order into problem for operator re-triage and is
// kept as an append-only record.
type ProblemReport struct {
	ID          int64
	OrderID     string
	DriverID    string
	Description string
	CreatedAt   time.Time
}

type ProblemReportModify struct {
	OrderID     *string
	DriverID    *string
	Description *string
}
