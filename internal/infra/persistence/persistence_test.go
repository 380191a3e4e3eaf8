package persistence

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/leadflow/internal/entity"
	"github.com/xavierca1/leadflow/internal/store"
)

func sampleState() store.State {
	at := time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)
	s := store.New(store.State{Settings: entity.Settings{CompanyName: "Acme", DefaultCurrency: "USD"}},
		store.WithClock(func() time.Time { return at }))
	lead := s.AddLead(entity.NewLead{FirstName: "Ana", Tags: []string{"VIP"}, PlatformType: entity.PlatformEmail})
	s.MarkMessageSent(lead.ID, true)
	s.ConvertToClient(lead.ID)
	s.AddQuote(entity.NewQuote{ClientID: lead.ID, Service: "Editing", Amount: 99.5})
	s.AddTimelineEvent(entity.NewTimelineEvent{ClientID: lead.ID, Type: entity.EventNote, Content: "hi"})
	s.AddMessageProfile(entity.MessageProfile{Name: "Cold", Template: "Hi {name}"})
	s.Login("ana@example.com")
	return s.Snapshot()
}

func roundTrip(t *testing.T, backend string) {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state."+backend)

	ss, err := Open(backend, path)
	require.NoError(t, err)
	defer ss.Close()

	_, err = ss.Load(ctx)
	require.ErrorIs(t, err, ErrNoSnapshot)

	want := sampleState()
	require.NoError(t, ss.Save(ctx, want))
	require.NoError(t, ss.Save(ctx, want))

	got, err := ss.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestFileStoreRoundTrip(t *testing.T)   { roundTrip(t, "file") }
func TestSQLiteStoreRoundTrip(t *testing.T) { roundTrip(t, "sqlite") }

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("redis", "x")
	assert.Error(t, err)
}
