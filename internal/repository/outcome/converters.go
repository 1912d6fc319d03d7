package outcome

import "dispatch/internal/entities"

func ToProofDomain(p *DeliveryProofDB) *entities.DeliveryProof {
	if p == nil {
		return nil
	}
	return &entities.DeliveryProof{
		ID:          p.ID,
		OrderID:     p.OrderID,
		DriverID:    p.DriverID,
		ArtifactURL: p.ArtifactURL,
		Note:        p.Note,
		CreatedAt:   p.CreatedAt,
	}
}

func ToReportDomain(r *ProblemReportDB) *entities.ProblemReport {
	if r == nil {
		return nil
	}
	return &entities.ProblemReport{
		ID:          r.ID,
		OrderID:     r.OrderID,
		DriverID:    r.DriverID,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}
