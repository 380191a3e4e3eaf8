package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/leadflow/internal/store"
)

type Source interface {
	Version() uint64
	Snapshot() store.State
}

type Sink interface {
	Save(ctx context.Context, st store.State) error
}

// SnapshotWorker persists the store whenever its version moved since the
// last successful save, and once more on shutdown.
type SnapshotWorker struct {
	source       Source
	sink         Sink
	tickInterval time.Duration
	log          *zap.Logger

	saved uint64
}

func NewSnapshotWorker(source Source, sink Sink, interval time.Duration, log *zap.Logger) *SnapshotWorker {
	return &SnapshotWorker{
		source:       source,
		sink:         sink,
		tickInterval: interval,
		log:          log.With(zap.String("component", "snapshot-worker")),
		saved:        source.Version(),
	}
}

func (w *SnapshotWorker) Start(ctx context.Context) {
	w.log.Info("snapshot worker started", zap.Duration("interval", w.tickInterval))

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			w.Flush(flushCtx)
			cancel()
			w.log.Info("snapshot worker stopped")
			return
		case <-ticker.C:
			w.Flush(ctx)
		}
	}
}

// Flush saves the store if it changed. It reports whether a save happened.
func (w *SnapshotWorker) Flush(ctx context.Context) bool {
	version := w.source.Version()
	if version == w.saved {
		return false
	}
	if err := w.sink.Save(ctx, w.source.Snapshot()); err != nil {
		w.log.Error("snapshot save failed", zap.Uint64("version", version), zap.Error(err))
		return false
	}
	w.saved = version
	w.log.Debug("snapshot saved", zap.Uint64("version", version))
	return true
}
