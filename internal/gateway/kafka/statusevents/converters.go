package statusevents

import (
	"time"

	"dispatch/internal/entities"
)

type statusChangedMessage struct {
	EventID        string `json:"event_id"`
	OrderID        string `json:"order_id"`
	PreviousStatus string `json:"previous_status"`
	NewStatus      string `json:"new_status"`
	Actor          string `json:"actor"`
	Reason         string `json:"reason,omitempty"`
	OccurredAt     string `json:"occurred_at"`
}

func toMessage(event entities.StatusChangedEvent) statusChangedMessage {
	return statusChangedMessage{
		EventID:        event.EventID,
		OrderID:        event.OrderID,
		PreviousStatus: string(event.PreviousStatus),
		NewStatus:      string(event.NewStatus),
		Actor:          event.Actor,
		Reason:         event.Reason,
		OccurredAt:     event.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
}
