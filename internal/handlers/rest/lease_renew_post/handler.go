package lease_renew_post

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

	var renewDTO LeaseRenewRequest
	err := json.NewDecoder(r.Body).Decode(&renewDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	lease, err := h.service.Renew(r.Context(), renewDTO.OrderID, driverID)
	if err != nil {
		switch {
		case errors.Is(err, claim.ErrInvalidOrderID),
			errors.Is(err, claim.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, claim.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, claim.ErrLockExpired),
			errors.Is(err, claim.ErrNotOwner):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, repository.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := LeaseRenewResponse{
		OrderID:       lease.OrderID,
		LockExpiresAt: lease.ExpiresAt,
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
