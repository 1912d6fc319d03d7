package transition_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/driverauth"
	"dispatch/internal/repository"
	"dispatch/internal/service/order"
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

	var transitionDTO TransitionRequest
	err := json.NewDecoder(r.Body).Decode(&transitionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	targetStatus := entities.OrderStatusType(transitionDTO.TargetStatus)

	orderEntity, err := h.service.Transition(r.Context(), transitionDTO.OrderID, targetStatus, driverID, transitionDTO.Reason)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidStatus),
			errors.Is(err, order.ErrMissingActor):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidTransition),
			errors.Is(err, order.ErrNotOwner),
			errors.Is(err, order.ErrLockExpired):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, repository.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := TransitionResponse{
		OrderID:       orderEntity.ID,
		Status:        orderEntity.Status.String(),
		DriverID:      orderEntity.DriverID,
		LockExpiresAt: orderEntity.LockExpiresAt,
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
