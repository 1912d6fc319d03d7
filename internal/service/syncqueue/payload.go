package syncqueue

// Wire shapes of the per-action payloads recorded by the driver client.
// claim and release carry no payload.

type advanceStatusPayload struct {
	TargetStatus string `json:"target_status"`
	Reason       string `json:"reason,omitempty"`
}

type attachProofPayload struct {
	ArtifactURL string  `json:"artifact_url"`
	Note        *string `json:"note,omitempty"`
}

type reportProblemPayload struct {
	Description string `json:"description"`
}
