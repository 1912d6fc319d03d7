package release_post

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

	var releaseDTO ReleaseRequest
	err := json.NewDecoder(r.Body).Decode(&releaseDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.Release(r.Context(), releaseDTO.OrderID, driverID)
	if err != nil {
		switch {
		case errors.Is(err, claim.ErrInvalidOrderID),
			errors.Is(err, claim.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, repository.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := ReleaseResponse{
		OrderID:  releaseDTO.OrderID,
		Released: true,
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
