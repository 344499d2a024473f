package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/loam"

	"github.com/aretw0/manualfsm/pkg/domain"
)

// Library adapts a Loam repository to ports.ManualSource.
// Each document is a manual: frontmatter carries metadata, the body is the procedure.
type Library struct {
	Repo *loam.TypedRepository[ManualMetadata]
}

// New creates a new Loam library adapter.
func New(repo *loam.TypedRepository[ManualMetadata]) *Library {
	return &Library{Repo: repo}
}

// Open initializes a read-only Loam repository at dir.
func Open(dir string) (*Library, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid library path: %w", err)
	}
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[ManualMetadata](repo)), nil
}

// Get returns the manual whose normalized id matches.
// Lookup goes through List so that "traffic" finds traffic.md and frontmatter ids win.
func (l *Library) Get(ctx context.Context, id string) (domain.Manual, error) {
	manuals, err := l.manuals(ctx)
	if err != nil {
		return domain.Manual{}, err
	}
	for _, m := range manuals {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Manual{}, fmt.Errorf("%w: %s", domain.ErrManualNotFound, id)
}

// List returns the normalized manual ids.
func (l *Library) List(ctx context.Context) ([]string, error) {
	manuals, err := l.manuals(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(manuals))
	for _, m := range manuals {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

func (l *Library) manuals(ctx context.Context) ([]domain.Manual, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string, len(docs))
	out := make([]domain.Manual, 0, len(docs))
	for _, doc := range docs {
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		if existing, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: manual '%s' is defined in both '%s' and '%s'", id, existing, doc.ID)
		}
		seen[id] = doc.ID

		out = append(out, domain.Manual{
			ID:    id,
			Title: doc.Data.Title,
			Text:  strings.TrimSpace(doc.Content),
		})
	}
	return out, nil
}

func trimExtension(id string) string {
	if ext := filepath.Ext(id); ext != "" {
		id = strings.TrimSuffix(id, ext)
	}
	return filepath.ToSlash(id)
}
