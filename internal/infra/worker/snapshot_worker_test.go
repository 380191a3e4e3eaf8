package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/xavierca1/leadflow/internal/entity"
	"github.com/xavierca1/leadflow/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type memorySink struct {
	mu    sync.Mutex
	saves []store.State
	err   error
}

func (m *memorySink) Save(ctx context.Context, st store.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.saves = append(m.saves, st)
	return nil
}

func (m *memorySink) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.saves)
}

func TestFlushOnlyWhenVersionMoves(t *testing.T) {
	s := store.New(store.State{})
	sink := &memorySink{}
	w := NewSnapshotWorker(s, sink, time.Hour, zap.NewNop())

	assert.False(t, w.Flush(context.Background()))

	s.AddLead(entity.NewLead{FirstName: "Ana"})
	assert.True(t, w.Flush(context.Background()))
	assert.False(t, w.Flush(context.Background()))
	assert.Equal(t, 1, sink.count())
	assert.Len(t, sink.saves[0].Leads, 1)
}

func TestFlushRetriesAfterFailure(t *testing.T) {
	s := store.New(store.State{})
	sink := &memorySink{err: errors.New("disk full")}
	w := NewSnapshotWorker(s, sink, time.Hour, zap.NewNop())
	s.AddLead(entity.NewLead{FirstName: "Ana"})

	assert.False(t, w.Flush(context.Background()))

	sink.err = nil
	assert.True(t, w.Flush(context.Background()))
}

func TestStartSavesOnShutdown(t *testing.T) {
	s := store.New(store.State{})
	sink := &memorySink{}
	w := NewSnapshotWorker(s, sink, time.Hour, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	s.AddLead(entity.NewLead{FirstName: "Ana"})
	cancel()
	<-done

	assert.Equal(t, 1, sink.count())
}

func TestStartSavesOnTick(t *testing.T) {
	s := store.New(store.State{})
	sink := &memorySink{}
	w := NewSnapshotWorker(s, sink, 10*time.Millisecond, zap.NewNop())
	s.AddLead(entity.NewLead{FirstName: "Ana"})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return sink.count() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
	assert.Equal(t, 1, sink.count())
}
