package outcome

import "time"

type DeliveryProofDB struct {
	ID          int64
	OrderID     string
	DriverID    string
	ArtifactURL string
	Note        *string
	CreatedAt   time.Time
}

type ProblemReportDB struct {
	ID          int64
	OrderID     string
	DriverID    string
	Description string
	CreatedAt   time.Time
}
