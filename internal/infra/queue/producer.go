package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/leadflow/internal/entity"
)

// Publisher ships one committed change towards the remote mirror.
type Publisher interface {
	PublishChange(ctx context.Context, change entity.Change) error
}

// Applier is implemented by the remote mirror.
type Applier interface {
	Apply(ctx context.Context, change entity.Change) error
}

type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch amqpPublisher
}

func NewProducer(ch amqpPublisher) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishChange(ctx context.Context, change entity.Change) error {
	body, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    strconv.FormatUint(change.Seq, 10),
			Type:         string(change.Kind),
			Timestamp:    change.OccurredAt,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publishing to RabbitMQ: %w", err)
	}
	return nil
}

// DirectPublisher skips the broker and applies changes straight to the
// mirror. Used when no AMQP_URL is configured.
type DirectPublisher struct {
	Mirror Applier
}

func (d DirectPublisher) PublishChange(ctx context.Context, change entity.Change) error {
	return d.Mirror.Apply(ctx, change)
}
