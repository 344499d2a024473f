package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/manualfsm"
	"github.com/aretw0/manualfsm/internal/config"
	"github.com/aretw0/manualfsm/pkg/adapters/file"
	loamAdapter "github.com/aretw0/manualfsm/pkg/adapters/loam"
	"github.com/aretw0/manualfsm/pkg/adapters/memory"
	"github.com/aretw0/manualfsm/pkg/adapters/redis"
	"github.com/aretw0/manualfsm/pkg/compiler"
	"github.com/aretw0/manualfsm/pkg/persistence/middleware"
	"github.com/aretw0/manualfsm/pkg/ports"
	"github.com/aretw0/manualfsm/pkg/synth"
)

// newStore builds the configured snapshot store wrapped in the store middleware.
// The returned closer is never nil.
func newStore(ctx context.Context, c config.Config, log *slog.Logger) (ports.SnapshotStore, func() error, error) {
	store, closer, err := openStore(ctx, c)
	if err != nil {
		return nil, closer, err
	}
	redact, err := middleware.NewRedactMiddleware(c.Store.Redact)
	if err != nil {
		_ = closer()
		return nil, func() error { return nil }, err
	}
	return middleware.Chain(store,
		middleware.NewLoggingMiddleware(log.With("store", c.Store.Driver)),
		redact,
	), closer, nil
}

func openStore(ctx context.Context, c config.Config) (ports.SnapshotStore, func() error, error) {
	noop := func() error { return nil }

	switch c.Store.Driver {
	case config.DriverFile:
		return file.New(c.Store.Dir), noop, nil
	case config.DriverRedis:
		rc := c.Store.Redis
		store := redis.New(rc.Addr, rc.Password, rc.DB,
			redis.WithPrefix(rc.Prefix),
			redis.WithTTL(rc.TTL),
		)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, noop, err
		}
		return store, store.Close, nil
	default:
		return memory.NewStore(), noop, nil
	}
}

// newLibrary opens the manual library if its directory exists.
func newLibrary(dir string) (ports.ManualSource, error) {
	if dir == "" {
		return nil, nil
	}
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("library path %s is not a directory", dir)
	}
	return loamAdapter.Open(dir)
}

// newEngine wires an Engine from configuration.
func newEngine(ctx context.Context, c config.Config, log *slog.Logger, hooks compiler.Hooks) (*manualfsm.Engine, func() error, error) {
	store, closer, err := newStore(ctx, c, log)
	if err != nil {
		return nil, closer, err
	}

	opts := []manualfsm.Option{
		manualfsm.WithStrategy(synth.Strategy(c.Strategy)),
		manualfsm.WithStore(store),
		manualfsm.WithLogger(log),
		manualfsm.WithHooks(hooks),
		manualfsm.WithMaxInputBytes(c.MaxInputBytes),
	}

	lib, err := newLibrary(c.Library.Dir)
	if err != nil {
		return nil, closer, err
	}
	if lib != nil {
		opts = append(opts, manualfsm.WithLibrary(lib))
	}

	eng, err := manualfsm.New(opts...)
	if err != nil {
		return nil, closer, err
	}
	return eng, closer, nil
}
