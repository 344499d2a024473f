package compiler

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/manualfsm/internal/segment"
	"github.com/aretw0/manualfsm/pkg/annotation"
	"github.com/aretw0/manualfsm/pkg/domain"
	"github.com/aretw0/manualfsm/pkg/synth"
	"github.com/aretw0/manualfsm/pkg/validate"
)

// Result is the outcome of one compilation.
type Result struct {
	// ID is a content hash of the snapshot, stable across runs.
	ID           string                `json:"graph_id"`
	Strategy     synth.Strategy        `json:"strategy"`
	Steps        []string              `json:"steps"`
	Instructions []domain.Record       `json:"instructions"`
	Snapshot     domain.Snapshot       `json:"fsm_data"`
	Diagnostics  []validate.Diagnostic `json:"diagnostics"`
	Stats        domain.Stats          `json:"fsm_stats"`

	// Graph is the synthesized graph. It must not be mutated.
	Graph *domain.Graph `json:"-"`
}

// Valid reports whether no structural defects were found.
func (r *Result) Valid() bool {
	return len(r.Diagnostics) == 0
}

// Messages returns the diagnostics as plain strings.
func (r *Result) Messages() []string {
	out := make([]string, 0, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		out = append(out, d.Message)
	}
	return out
}

// Hooks are optional observability callbacks.
type Hooks struct {
	OnCompiled func(ctx context.Context, res *Result, elapsed time.Duration)
	OnRejected func(ctx context.Context, err error)
}

// Compiler runs the pipeline.
type Compiler struct {
	annotator annotation.Annotator
	synth     *synth.Synthesizer
	strategy  synth.Strategy
	maxInput  int
	hooks     Hooks
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Compiler.
type Option func(*Compiler)

// WithAnnotator replaces the default heuristic annotator.
func WithAnnotator(a annotation.Annotator) Option {
	return func(c *Compiler) {
		c.annotator = a
	}
}

// WithStrategy selects the synthesis strategy.
func WithStrategy(s synth.Strategy) Option {
	return func(c *Compiler) {
		c.strategy = s
	}
}

// WithMaxInputBytes bounds the accepted manual size. <= 0 disables the limit.
func WithMaxInputBytes(n int) Option {
	return func(c *Compiler) {
		c.maxInput = n
	}
}

// WithHooks registers observability hooks.
func WithHooks(h Hooks) Option {
	return func(c *Compiler) {
		c.hooks = h
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) {
		c.logger = logger
	}
}

// New creates a Compiler.
func New(opts ...Option) *Compiler {
	c := &Compiler{
		strategy: synth.Linear,
		maxInput: DefaultMaxInputBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.annotator == nil {
		c.annotator = annotation.NewHeuristic()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c.synth = synth.New(synth.WithStrategy(c.strategy))
	return c
}

// Strategy returns the configured synthesis strategy.
func (c *Compiler) Strategy() synth.Strategy {
	return c.strategy
}

// Compile segments, annotates, synthesizes and validates a manual.
func (c *Compiler) Compile(ctx context.Context, text string) (*Result, error) {
	start := time.Now()

	clean, err := Sanitize(text, c.maxInput)
	if err != nil {
		c.reject(ctx, err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	steps := segment.Lines(clean)
	c.logger.Debug("manual segmented", "steps", len(steps))

	instructions := annotation.AnnotateAll(c.annotator, steps)
	res, err := c.build(instructions)
	if err != nil {
		c.reject(ctx, err)
		return nil, err
	}
	res.Steps = steps

	c.finish(ctx, res, start)
	return res, nil
}

// CompileInstructions synthesizes and validates pre-annotated instructions.
func (c *Compiler) CompileInstructions(ctx context.Context, instructions []domain.Instruction) (*Result, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := c.build(instructions)
	if err != nil {
		c.reject(ctx, err)
		return nil, err
	}
	res.Steps = make([]string, 0, len(instructions))
	for _, in := range instructions {
		res.Steps = append(res.Steps, in.Base().Text)
	}

	c.finish(ctx, res, start)
	return res, nil
}

func (c *Compiler) build(instructions []domain.Instruction) (*Result, error) {
	g := c.synth.Synthesize(instructions)
	snap := g.Snapshot()

	id, err := SnapshotID(snap)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(instructions))
	for _, in := range instructions {
		records = append(records, domain.RecordOf(in))
	}

	diags := validate.Check(g)
	if diags == nil {
		diags = []validate.Diagnostic{}
	}

	return &Result{
		ID:           id,
		Strategy:     c.strategy,
		Instructions: records,
		Snapshot:     snap,
		Diagnostics:  diags,
		Stats:        snap.Stats(),
		Graph:        g,
	}, nil
}

func (c *Compiler) finish(ctx context.Context, res *Result, start time.Time) {
	elapsed := time.Since(start)
	c.logger.Info("manual compiled",
		"graph_id", res.ID,
		"strategy", res.Strategy,
		"states", res.Stats.States,
		"transitions", res.Stats.Transitions,
		"diagnostics", len(res.Diagnostics),
	)
	if c.hooks.OnCompiled != nil {
		c.hooks.OnCompiled(ctx, res, elapsed)
	}
}

func (c *Compiler) reject(ctx context.Context, err error) {
	c.logger.Warn("manual rejected", "error", err)
	if c.hooks.OnRejected != nil {
		c.hooks.OnRejected(ctx, err)
	}
}

// SnapshotID returns a stable content hash for a snapshot: the first 16 hex
// characters of the SHA-256 of its compact JSON form.
func SnapshotID(snap domain.Snapshot) (string, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to serialize snapshot for hashing: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:16], nil
}
