package claim_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/pkg/driverauth"
	"dispatch/internal/repository"
	"dispatch/internal/service/claim"
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

	var claimDTO ClaimRequest
	err := json.NewDecoder(r.Body).Decode(&claimDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	outcomes, err := h.service.BatchClaim(r.Context(), claimDTO.OrderIDs, driverID, h.service.LeaseDuration())
	if err != nil {
		switch {
		case errors.Is(err, claim.ErrInvalidOrderID),
			errors.Is(err, claim.ErrInvalidDriverID),
			errors.Is(err, claim.ErrEmptyBatch):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, repository.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := ClaimResponse{
		Results: make([]ClaimResult, len(outcomes)),
	}
	for i, outcome := range outcomes {
		response.Results[i] = ClaimResult{
			OrderID:       outcome.OrderID,
			Result:        outcome.Result.String(),
			HolderID:      outcome.HolderID,
			LockExpiresAt: outcome.LockExpiresAt,
		}
		if outcome.Lease != nil {
			expiresAt := outcome.Lease.ExpiresAt
			response.Results[i].LockExpiresAt = &expiresAt
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
