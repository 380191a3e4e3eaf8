package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xavierca1/leadflow/internal/entity"
)

type consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

// Worker consumes the sync queue and applies every change to the mirror.
// Failed changes are nacked without requeue so they end in the DLQ.
type Worker struct {
	Channel  consumer
	Mirror   Applier
	log      *zap.Logger
	failures prometheus.Counter
}

func NewWorker(ch consumer, mirror Applier, log *zap.Logger, failures prometheus.Counter) *Worker {
	return &Worker{
		Channel:  ch,
		Mirror:   mirror,
		log:      log.With(zap.String("component", "sync-worker")),
		failures: failures,
	}
}

func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("registering RabbitMQ consumer: %w", err)
	}

	w.log.Info("worker waiting for changes", zap.String("queue", queueName))
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("canal de entrega fechado")
			}
			w.handle(ctx, d)
		}
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	var change entity.Change
	if err := json.Unmarshal(d.Body, &change); err != nil {
		w.log.Error("invalid change payload", zap.Error(err))
		w.fail()
		d.Nack(false, false)
		return
	}

	if err := w.Mirror.Apply(ctx, change); err != nil {
		w.log.Error("mirror rejected change",
			zap.Uint64("seq", change.Seq),
			zap.String("kind", string(change.Kind)),
			zap.String("id", change.ID),
			zap.Error(err))
		w.fail()
		d.Nack(false, false)
		return
	}

	w.log.Debug("change applied", zap.Uint64("seq", change.Seq), zap.String("kind", string(change.Kind)))
	d.Ack(false)
}

func (w *Worker) fail() {
	if w.failures != nil {
		w.failures.Inc()
	}
}
