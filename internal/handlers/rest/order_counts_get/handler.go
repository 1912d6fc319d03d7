package order_counts_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/repository"
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
	area := r.URL.Query().Get("area")

	counts, err := h.service.ClaimableOrderCounts(r.Context(), area)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	countDTOs := make([]AreaCount, len(counts))
	for i, count := range counts {
		countDTOs[i].Area = count.Area
		countDTOs[i].Count = count.Count
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(countDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
