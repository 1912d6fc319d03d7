package order_status_requested

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"dispatch/internal/entities"
	orderservice "dispatch/internal/service/order"
	"dispatch/pkg/logger"
)

type Handler struct {
	eventsService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, eventsService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		eventsService:            eventsService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("order.status.requested: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order.status.requested: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusRequestedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.status.requested handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.status.requested processing")

	status := entities.OrderStatusType(event.Status)
	orderModify := entities.OrderModify{
		ID:     &event.OrderID,
		Status: &status,
	}

	err = h.eventsService.ProcessStatusRequest(ctx, orderModify, event.Reason)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.requested handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrInvalidTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.requested handler transition not allowed from current status")

		case errors.Is(err, orderservice.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.requested handler unknown order")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.requested handler failed to process order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order.status.requested: processed")

	sess.MarkMessage(message, "")
	return false
}
