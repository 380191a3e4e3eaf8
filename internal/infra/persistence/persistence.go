// Package persistence saves and loads the local state snapshot.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/xavierca1/leadflow/internal/store"
)

// ErrNoSnapshot means nothing has been saved yet.
var ErrNoSnapshot = errors.New("no saved snapshot")

type SnapshotStore interface {
	Load(ctx context.Context) (store.State, error)
	Save(ctx context.Context, st store.State) error
	Close() error
}

// Open picks the backend by name ("file" or "sqlite").
func Open(backend, path string) (SnapshotStore, error) {
	switch backend {
	case "file":
		return NewFileStore(path), nil
	case "sqlite":
		return OpenSQLite(path)
	}
	return nil, fmt.Errorf("unknown state backend %q", backend)
}
