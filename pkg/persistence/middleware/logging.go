package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/manualfsm/pkg/domain"
	"github.com/aretw0/manualfsm/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.SnapshotStore
	logger *slog.Logger
}

// NewLoggingMiddleware logs every store call at debug level, and failures at
// warn level.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return func(next ports.SnapshotStore) ports.SnapshotStore {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) Save(ctx context.Context, id string, snap domain.Snapshot) error {
	start := time.Now()
	err := m.next.Save(ctx, id, snap)
	m.log(ctx, "save", id, start, err, slog.Int("states", len(snap.States)))
	return err
}

func (m *loggingMiddleware) Load(ctx context.Context, id string) (domain.Snapshot, error) {
	start := time.Now()
	snap, err := m.next.Load(ctx, id)
	m.log(ctx, "load", id, start, err)
	return snap, err
}

func (m *loggingMiddleware) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := m.next.Delete(ctx, id)
	m.log(ctx, "delete", id, start, err)
	return err
}

func (m *loggingMiddleware) List(ctx context.Context) ([]string, error) {
	start := time.Now()
	ids, err := m.next.List(ctx)
	m.log(ctx, "list", "", start, err, slog.Int("count", len(ids)))
	return ids, err
}

func (m *loggingMiddleware) log(ctx context.Context, op, id string, start time.Time, err error, extra ...slog.Attr) {
	attrs := []slog.Attr{
		slog.String("op", op),
		slog.Duration("elapsed", time.Since(start)),
	}
	if id != "" {
		attrs = append(attrs, slog.String("graph_id", id))
	}
	attrs = append(attrs, extra...)

	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
		m.logger.LogAttrs(ctx, slog.LevelWarn, "Store call failed", attrs...)
		return
	}
	m.logger.LogAttrs(ctx, slog.LevelDebug, "Store call", attrs...)
}
