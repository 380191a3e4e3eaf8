package main

import (
	"context"
	"errors"

	"github.com/xavierca1/leadflow/internal/config"
	"github.com/xavierca1/leadflow/internal/infra/persistence"
	"github.com/xavierca1/leadflow/internal/store"
)

// openState loads the saved snapshot, falling back to the seed. The caller
// closes the returned snapshot store.
func openState(ctx context.Context) (*store.Store, persistence.SnapshotStore, error) {
	snapshots, err := persistence.Open(cfg.StateBackend, cfg.StatePath)
	if err != nil {
		return nil, nil, err
	}

	seed, err := config.LoadSeed(cfg.SeedFile)
	if err != nil {
		snapshots.Close()
		return nil, nil, err
	}
	st := store.New(seed.State(), store.WithLogger(logger))

	saved, err := snapshots.Load(ctx)
	switch {
	case err == nil:
		st.Restore(saved)
	case errors.Is(err, persistence.ErrNoSnapshot):
	default:
		snapshots.Close()
		return nil, nil, err
	}
	return st, snapshots, nil
}
