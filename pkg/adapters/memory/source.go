package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/manualfsm/pkg/domain"
)

// Library implements ports.ManualSource over an in-memory map.
// Useful for tests and for serving manuals submitted at runtime.
type Library struct {
	mu      sync.RWMutex
	manuals map[string]domain.Manual
}

// NewLibrary creates a library seeded with the given manuals.
func NewLibrary(manuals ...domain.Manual) *Library {
	l := &Library{manuals: make(map[string]domain.Manual, len(manuals))}
	for _, m := range manuals {
		l.manuals[m.ID] = m
	}
	return l
}

// Put adds or replaces a manual.
func (l *Library) Put(m domain.Manual) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.manuals[m.ID] = m
}

// Get returns the manual by id.
func (l *Library) Get(ctx context.Context, id string) (domain.Manual, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	m, ok := l.manuals[id]
	if !ok {
		return domain.Manual{}, domain.ErrManualNotFound
	}
	return m, nil
}

// List returns manual ids in lexical order.
func (l *Library) List(ctx context.Context) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ids := make([]string, 0, len(l.manuals))
	for id := range l.manuals {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
