package sync_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/driverauth"
	"dispatch/internal/repository"
	"dispatch/internal/service/syncqueue"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	driverID, ok := driverauth.DriverIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var syncDTO SyncRequest
	err := json.NewDecoder(r.Body).Decode(&syncDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	entries := make([]entities.OfflineQueueEntry, len(syncDTO.Entries))
	for i, entry := range syncDTO.Entries {
		entries[i] = entities.OfflineQueueEntry{
			ID:              entry.ID,
			DriverID:        driverID,
			OrderID:         entry.OrderID,
			ActionType:      entities.QueueActionType(entry.ActionType),
			Payload:         entry.Payload,
			ClientTimestamp: entry.ClientTimestamp,
		}
	}

	outcomes, err := h.service.Reconcile(r.Context(), driverID, entries)
	if err != nil {
		switch {
		case errors.Is(err, syncqueue.ErrInvalidDriverID),
			errors.Is(err, syncqueue.ErrEmptyBatch),
			errors.Is(err, syncqueue.ErrBatchTooLarge):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, repository.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := SyncResponse{
		Results: make([]SyncResult, len(outcomes)),
	}
	for i, outcome := range outcomes {
		response.Results[i] = SyncResult{
			EntryID:    outcome.EntryID,
			SyncStatus: outcome.SyncStatus.String(),
			Reason:     outcome.Reason,
		}
		if outcome.Order != nil {
			response.Results[i].Order = &OrderSnapshot{
				OrderID:       outcome.Order.ID,
				Status:        outcome.Order.Status.String(),
				DriverID:      outcome.Order.DriverID,
				LockExpiresAt: outcome.Order.LockExpiresAt,
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
