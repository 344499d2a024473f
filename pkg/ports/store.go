package ports

import (
	"context"

	"github.com/aretw0/manualfsm/pkg/domain"
)

// SnapshotStore persists compiled graphs.
type SnapshotStore interface {
	// Save persists the snapshot under the given graph id, replacing any previous one.
	Save(ctx context.Context, id string, snap domain.Snapshot) error

	// Load retrieves the snapshot for a graph id.
	// Returns domain.ErrSnapshotNotFound if it does not exist.
	Load(ctx context.Context, id string) (domain.Snapshot, error)

	// Delete removes the snapshot. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the stored graph ids.
	List(ctx context.Context) ([]string, error)
}

// ManualSource reads manuals from a library.
type ManualSource interface {
	// Get returns the manual with the given id.
	// Returns domain.ErrManualNotFound if it does not exist.
	Get(ctx context.Context, id string) (domain.Manual, error)

	// List returns the ids of all manuals.
	List(ctx context.Context) ([]string, error)
}
