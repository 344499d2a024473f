package middleware

import (
	"context"
	"fmt"
	"regexp"

	"github.com/aretw0/manualfsm/pkg/domain"
	"github.com/aretw0/manualfsm/pkg/ports"
)

// Mask replaces every redacted match.
const Mask = "***"

type redactMiddleware struct {
	next     ports.SnapshotStore
	patterns []*regexp.Regexp
}

// NewRedactMiddleware masks text matching any of the patterns in state
// descriptions, conditions and actions before they reach the store.
// Ids are left alone so that the stored graph keeps its shape.
func NewRedactMiddleware(patternStrings []string) (Middleware, error) {
	patterns := make([]*regexp.Regexp, 0, len(patternStrings))
	for _, p := range patternStrings {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid redact pattern %q: %w", p, err)
		}
		patterns = append(patterns, re)
	}
	return func(next ports.SnapshotStore) ports.SnapshotStore {
		if len(patterns) == 0 {
			return next
		}
		return &redactMiddleware{next: next, patterns: patterns}
	}, nil
}

func (m *redactMiddleware) Save(ctx context.Context, id string, snap domain.Snapshot) error {
	// Copy so the caller's snapshot stays intact.
	out := domain.Snapshot{
		StartStateID: snap.StartStateID,
		States:       make([]domain.State, len(snap.States)),
		Transitions:  make([]domain.Transition, len(snap.Transitions)),
	}
	for i, s := range snap.States {
		s.Description = m.mask(s.Description)
		out.States[i] = s
	}
	for i, t := range snap.Transitions {
		t.Condition = m.maskPtr(t.Condition)
		t.Action = m.maskPtr(t.Action)
		out.Transitions[i] = t
	}
	return m.next.Save(ctx, id, out)
}

func (m *redactMiddleware) Load(ctx context.Context, id string) (domain.Snapshot, error) {
	return m.next.Load(ctx, id)
}

func (m *redactMiddleware) Delete(ctx context.Context, id string) error {
	return m.next.Delete(ctx, id)
}

func (m *redactMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

func (m *redactMiddleware) mask(s string) string {
	for _, p := range m.patterns {
		s = p.ReplaceAllLiteralString(s, Mask)
	}
	return s
}

func (m *redactMiddleware) maskPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return domain.Optional(m.mask(*s))
}
