package statusevents

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"dispatch/internal/entities"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	sinkName = "kafka"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type EventGateway struct {
	producer producer
	topic    string
	retrier  retrier
}

func New(producer producer, topic string) *EventGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &EventGateway{
		producer: producer,
		topic:    topic,
		retrier:  backoff_adapter.New(retryConfig),
	}
}

func (g *EventGateway) PublishStatusChanged(ctx context.Context, event entities.StatusChangedEvent) error {
	payload, err := json.Marshal(toMessage(event))
	if err != nil {
		return fmt.Errorf("gateway statusevents, marshal event: %s: %w", event.EventID, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		// Ключ = orderID, чтобы события одного заказа читались по порядку
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	}

	err = g.executeWithMetrics(ctx, "PublishStatusChanged", func(_ context.Context) error {
		_, _, sendErr := g.producer.SendMessage(msg)
		return sendErr
	})
	if err != nil {
		return fmt.Errorf("gateway statusevents, publish: %s: %w", event.OrderID, err)
	}

	return nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	switch err {
	case sarama.ErrNotLeaderForPartition,
		sarama.ErrLeaderNotAvailable,
		sarama.ErrRequestTimedOut,
		sarama.ErrNotEnoughReplicas,
		sarama.ErrNotEnoughReplicasAfterAppend:
		return true
	default:
		return false
	}
}

func (g *EventGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	GatewayRequestDuration.WithLabelValues(sinkName, method, outcome).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(sinkName, method, outcome).Inc()
	}

	return err
}
