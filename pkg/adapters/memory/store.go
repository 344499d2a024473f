package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/manualfsm/pkg/domain"
)

// Store implements ports.SnapshotStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.Snapshot
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.Snapshot),
	}
}

// Save persists the snapshot in memory.
func (s *Store) Save(ctx context.Context, id string, snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = clone(snap)
	return nil
}

// Load retrieves the snapshot from memory.
func (s *Store) Load(ctx context.Context, id string) (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.data[id]
	if !ok {
		return domain.Snapshot{}, domain.ErrSnapshotNotFound
	}
	// Copy on read so callers can't mutate the stored slices.
	return clone(snap), nil
}

// Delete removes the snapshot.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns stored graph ids in lexical order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func clone(snap domain.Snapshot) domain.Snapshot {
	out := domain.Snapshot{
		States:      append([]domain.State{}, snap.States...),
		Transitions: make([]domain.Transition, len(snap.Transitions)),
	}
	if snap.StartStateID != nil {
		out.StartStateID = domain.Optional(*snap.StartStateID)
	}
	for i, t := range snap.Transitions {
		out.Transitions[i] = domain.Transition{SourceID: t.SourceID, TargetID: t.TargetID}
		if t.Condition != nil {
			out.Transitions[i].Condition = domain.Optional(*t.Condition)
		}
		if t.Action != nil {
			out.Transitions[i].Action = domain.Optional(*t.Action)
		}
	}
	return out
}
