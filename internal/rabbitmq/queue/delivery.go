package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/Techhackontime999/LinkUp-sub000/internal/config"
	"github.com/Techhackontime999/LinkUp-sub000/internal/delivery"
)

const (
	FlushRoutingKey   = "flush"
	FailureRoutingKey = "failed"
)

// DeliveryQueue carries flush requests to the flush workers and publishes
// abandoned deliveries for consumers outside this service.
type DeliveryQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer
	strategy  retry.Strategy
}

// NewDeliveryQueue declares the exchange and queues described by cfg. Flush
// requests rejected by a consumer are dead-lettered to the DLQ.
func NewDeliveryQueue(ch *rabbitmq.Channel, cfg config.RabbitMQ, strategy retry.Strategy) (*DeliveryQueue, error) {
	exchange := rabbitmq.NewExchange(cfg.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(cfg.DLQ, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	failedQ, err := qm.DeclareQueue(cfg.FailedQueue, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare failed queue: %w", err)
	}

	flushArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": cfg.DLQ,
	}

	flushQ, err := qm.DeclareQueue(cfg.FlushQueue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    flushArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare flush queue: %w", err)
	}

	if err := ch.QueueBind(flushQ.Name, FlushRoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the flush queue: %w", err)
	}
	if err := ch.QueueBind(failedQ.Name, FailureRoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the failed queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(flushQ.Name))

	return &DeliveryQueue{Publisher: pub, Consumer: cons, strategy: strategy}, nil
}

// RequestFlush publishes req for the flush workers.
func (q *DeliveryQueue) RequestFlush(_ context.Context, req delivery.FlushRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal flush request: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, FlushRoutingKey, "application/json", q.strategy)
}

// PublishFailure publishes an abandoned delivery.
func (q *DeliveryQueue) PublishFailure(_ context.Context, event delivery.FailureEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal failure event: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, FailureRoutingKey, "application/json", q.strategy)
}

// Consume forwards flush requests to out until ctx is done. Bodies that do
// not decode are logged and dropped.
func (q *DeliveryQueue) Consume(ctx context.Context, out chan<- delivery.FlushRequest, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go forward(ctx, msgChan, out)

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}

func forward(ctx context.Context, in <-chan []byte, out chan<- delivery.FlushRequest) {
	for m := range in {
		req, err := DecodeFlushRequest(m)
		if err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to decode flush request")
			continue
		}

		select {
		case out <- req:
		case <-ctx.Done():
			return
		}
	}
}

// DecodeFlushRequest parses and checks a flush request body.
func DecodeFlushRequest(body []byte) (delivery.FlushRequest, error) {
	var req delivery.FlushRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return delivery.FlushRequest{}, fmt.Errorf("failed to unmarshal flush request: %w", err)
	}
	if req.SenderID <= 0 || req.RecipientID <= 0 {
		return delivery.FlushRequest{}, fmt.Errorf("flush request without pair: %s", body)
	}

	return req, nil
}
