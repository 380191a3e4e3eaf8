package queue

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/xavierca1/leadflow/internal/entity"
)

const drainTimeout = 5 * time.Second

// Outbox decouples store mutations from remote sync. Notify never blocks:
// when the buffer is full the change is dropped and counted, since the
// local state stays authoritative.
type Outbox struct {
	changes  chan entity.Change
	pub      Publisher
	log      *zap.Logger
	failures prometheus.Counter
	dropped  prometheus.Counter
}

type OutboxOption func(*Outbox)

func WithFailureCounter(c prometheus.Counter) OutboxOption {
	return func(o *Outbox) { o.failures = c }
}

func WithDropCounter(c prometheus.Counter) OutboxOption {
	return func(o *Outbox) { o.dropped = c }
}

func NewOutbox(pub Publisher, size int, log *zap.Logger, opts ...OutboxOption) *Outbox {
	o := &Outbox{
		changes: make(chan entity.Change, size),
		pub:     pub,
		log:     log.With(zap.String("component", "outbox")),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Outbox) Notify(change entity.Change) {
	select {
	case o.changes <- change:
	default:
		o.log.Warn("outbox full, change dropped",
			zap.Uint64("seq", change.Seq),
			zap.String("kind", string(change.Kind)),
			zap.String("id", change.ID))
		if o.dropped != nil {
			o.dropped.Inc()
		}
	}
}

// Run publishes changes in order until ctx ends, then flushes what is still
// buffered with a short deadline.
func (o *Outbox) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			o.drain()
			return nil
		case c := <-o.changes:
			o.publish(ctx, c)
		}
	}
}

func (o *Outbox) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	for {
		select {
		case c := <-o.changes:
			o.publish(ctx, c)
		default:
			return
		}
	}
}

func (o *Outbox) publish(ctx context.Context, c entity.Change) {
	if err := o.pub.PublishChange(ctx, c); err != nil {
		o.log.Error("remote sync failed",
			zap.Uint64("seq", c.Seq),
			zap.String("kind", string(c.Kind)),
			zap.String("op", string(c.Op)),
			zap.String("id", c.ID),
			zap.Error(err))
		if o.failures != nil {
			o.failures.Inc()
		}
		return
	}
	o.log.Debug("change synced", zap.Uint64("seq", c.Seq), zap.String("kind", string(c.Kind)))
}
