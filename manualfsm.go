package manualfsm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/manualfsm/internal/presentation/graph"
	"github.com/aretw0/manualfsm/pkg/adapters/memory"
	"github.com/aretw0/manualfsm/pkg/annotation"
	"github.com/aretw0/manualfsm/pkg/compiler"
	"github.com/aretw0/manualfsm/pkg/domain"
	"github.com/aretw0/manualfsm/pkg/ports"
	"github.com/aretw0/manualfsm/pkg/synth"
	"github.com/aretw0/manualfsm/pkg/validate"
)

// ErrNoLibrary is returned by manual lookups when no ManualSource is configured.
var ErrNoLibrary = errors.New("no manual library configured")

// Engine is the high-level entry point for the library.
// It wraps the compiler pipeline with persistence and manual lookup.
type Engine struct {
	compiler *compiler.Compiler
	store    ports.SnapshotStore
	library  ports.ManualSource
	logger   *slog.Logger

	strategy synth.Strategy
	maxInput int
	hooks    compiler.Hooks
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithStrategy selects the synthesis strategy (default linear).
func WithStrategy(s synth.Strategy) Option {
	return func(e *Engine) {
		e.strategy = s
	}
}

// WithStore sets where compiled graphs are persisted (default in-memory).
func WithStore(s ports.SnapshotStore) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithLibrary sets the manual library used by CompileManual.
func WithLibrary(l ports.ManualSource) Option {
	return func(e *Engine) {
		e.library = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHooks registers observability hooks on the compiler.
func WithHooks(h compiler.Hooks) Option {
	return func(e *Engine) {
		e.hooks = h
	}
}

// WithMaxInputBytes bounds the accepted manual size.
func WithMaxInputBytes(n int) Option {
	return func(e *Engine) {
		e.maxInput = n
	}
}

// New initializes an Engine.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{
		strategy: synth.Linear,
		maxInput: compiler.DefaultMaxInputBytes,
	}
	for _, opt := range opts {
		opt(eng)
	}

	if _, err := synth.ParseStrategy(string(eng.strategy)); err != nil {
		return nil, err
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if eng.store == nil {
		eng.store = memory.NewStore()
	}

	eng.compiler = compiler.New(
		compiler.WithStrategy(eng.strategy),
		compiler.WithMaxInputBytes(eng.maxInput),
		compiler.WithHooks(eng.hooks),
		compiler.WithLogger(eng.logger),
	)
	return eng, nil
}

// Strategy returns the configured synthesis strategy.
func (e *Engine) Strategy() synth.Strategy {
	return e.strategy
}

// MaxInputBytes returns the accepted manual size limit.
func (e *Engine) MaxInputBytes() int {
	return e.maxInput
}

// Compile runs the pipeline over raw manual text without persisting.
func (e *Engine) Compile(ctx context.Context, text string) (*compiler.Result, error) {
	return e.compiler.Compile(ctx, text)
}

// CompileAndSave compiles text and stores the snapshot under its graph id.
func (e *Engine) CompileAndSave(ctx context.Context, text string) (*compiler.Result, error) {
	res, err := e.compiler.Compile(ctx, text)
	if err != nil {
		return nil, err
	}
	if err := e.Save(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// CompileRecords compiles pre-annotated instruction records (JSON or YAML list).
func (e *Engine) CompileRecords(ctx context.Context, data []byte) (*compiler.Result, error) {
	instructions, err := annotation.Parse(data)
	if err != nil {
		return nil, err
	}
	return e.compiler.CompileInstructions(ctx, instructions)
}

// CompileManual compiles a manual from the library and stores the result.
func (e *Engine) CompileManual(ctx context.Context, id string) (*compiler.Result, error) {
	if e.library == nil {
		return nil, ErrNoLibrary
	}
	m, err := e.library.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("manual loaded", "manual_id", m.ID, "title", m.Title)
	return e.CompileAndSave(ctx, m.Text)
}

// Manuals lists the library's manual ids.
func (e *Engine) Manuals(ctx context.Context) ([]string, error) {
	if e.library == nil {
		return nil, ErrNoLibrary
	}
	return e.library.List(ctx)
}

// Graph loads a stored snapshot.
func (e *Engine) Graph(ctx context.Context, id string) (domain.Snapshot, error) {
	return e.store.Load(ctx, id)
}

// Graphs lists stored graph ids.
func (e *Engine) Graphs(ctx context.Context) ([]string, error) {
	return e.store.List(ctx)
}

// DeleteGraph removes a stored graph.
func (e *Engine) DeleteGraph(ctx context.Context, id string) error {
	return e.store.Delete(ctx, id)
}

// Validate checks a snapshot for structural defects.
func (e *Engine) Validate(snap domain.Snapshot) []validate.Diagnostic {
	return validate.Check(domain.FromSnapshot(snap))
}

// Render draws a snapshot as "dot" or "mermaid". Mermaid output highlights
// states named by diagnostics.
func (e *Engine) Render(snap domain.Snapshot, format string) (string, error) {
	f, err := graph.ParseFormat(format)
	if err != nil {
		return "", err
	}
	return graph.Render(snap, f, overlay(e.Validate(snap)))
}

// overlay marks every state named by a diagnostic.
func overlay(diags []validate.Diagnostic) *graph.Overlay {
	o := &graph.Overlay{}
	for _, d := range diags {
		o.Flagged = append(o.Flagged, d.StateIDs...)
	}
	return o
}

// Save stores a compiled result's snapshot under its graph id.
func (e *Engine) Save(ctx context.Context, res *compiler.Result) error {
	if err := e.store.Save(ctx, res.ID, res.Snapshot); err != nil {
		return fmt.Errorf("failed to store graph %s: %w", res.ID, err)
	}
	e.logger.Debug("graph stored", "graph_id", res.ID)
	return nil
}
