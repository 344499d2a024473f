package compiler_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/manualfsm/pkg/compiler"
	"github.com/aretw0/manualfsm/pkg/domain"
	"github.com/aretw0/manualfsm/pkg/synth"
)

const manual = `1. Press the button.
2. If the light is red, wait.
3. Otherwise, open the valve.
`

func TestCompile_EndToEnd(t *testing.T) {
	c := compiler.New()
	res, err := c.Compile(context.Background(), "Press the button.\nIf the light is red, wait.")
	require.NoError(t, err)

	assert.Equal(t, []string{"Press the button.", "If the light is red, wait."}, res.Steps)
	assert.Equal(t, domain.Stats{States: 4, Transitions: 3}, res.Stats)
	assert.True(t, res.Valid())
	assert.Empty(t, res.Messages())

	require.Len(t, res.Snapshot.Transitions, 3)
	tr := res.Snapshot.Transitions[1]
	assert.Equal(t, "S1", tr.SourceID)
	assert.Equal(t, "S2", tr.TargetID)
	assert.Equal(t, "if the light is red", domain.Deref(tr.Condition))
	assert.Nil(t, res.Snapshot.Transitions[0].Condition)

	require.Len(t, res.Instructions, 2)
	assert.Equal(t, domain.KindConditional, res.Instructions[1].Kind)
	assert.Equal(t, "wait", domain.Deref(res.Instructions[1].Action))
}

func TestCompile_EmptyManual(t *testing.T) {
	res, err := compiler.New().Compile(context.Background(), "  \n\n")
	require.NoError(t, err)

	assert.Equal(t, domain.Stats{States: 2, Transitions: 1}, res.Stats)
	assert.Empty(t, res.Steps)
	assert.NotNil(t, res.Diagnostics)
}

func TestCompile_Strategies(t *testing.T) {
	linear, err := compiler.New().Compile(context.Background(), manual)
	require.NoError(t, err)
	assert.Equal(t, synth.Linear, linear.Strategy)
	assert.Equal(t, 5, linear.Stats.States)

	branching, err := compiler.New(compiler.WithStrategy(synth.Branching)).Compile(context.Background(), manual)
	require.NoError(t, err)
	assert.Equal(t, synth.Branching, branching.Strategy)
	assert.Equal(t, 6, branching.Stats.States, "expected one join state")
	assert.True(t, branching.Valid())
	assert.NotEqual(t, linear.ID, branching.ID)
}

func TestCompile_IDIsDeterministic(t *testing.T) {
	c := compiler.New()
	a, err := c.Compile(context.Background(), manual)
	require.NoError(t, err)
	b, err := c.Compile(context.Background(), manual)
	require.NoError(t, err)

	assert.Len(t, a.ID, 16)
	assert.Equal(t, a.ID, b.ID)
	assert.NotSame(t, a.Graph, b.Graph, "each compilation owns its graph")
}

func TestCompile_RejectsInput(t *testing.T) {
	var rejected []error
	c := compiler.New(
		compiler.WithMaxInputBytes(8),
		compiler.WithHooks(compiler.Hooks{
			OnRejected: func(ctx context.Context, err error) { rejected = append(rejected, err) },
		}),
	)

	_, err := c.Compile(context.Background(), strings.Repeat("x", 9))
	assert.True(t, errors.Is(err, compiler.ErrInputTooLarge))

	_, err = c.Compile(context.Background(), "\xff\xfe")
	assert.True(t, errors.Is(err, compiler.ErrInvalidUTF8))

	assert.Len(t, rejected, 2)
}

func TestCompile_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := compiler.New().Compile(ctx, manual)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompile_OnCompiledHook(t *testing.T) {
	var got *compiler.Result
	c := compiler.New(compiler.WithHooks(compiler.Hooks{
		OnCompiled: func(ctx context.Context, res *compiler.Result, elapsed time.Duration) {
			got = res
			assert.GreaterOrEqual(t, elapsed, time.Duration(0))
		},
	}))

	res, err := c.Compile(context.Background(), manual)
	require.NoError(t, err)
	assert.Same(t, res, got)
}

func TestCompileInstructions(t *testing.T) {
	in := []domain.Instruction{
		domain.Imperative{Step: domain.Step{ID: 0, Text: "Open the lid."}},
		domain.Conditional{Step: domain.Step{ID: 1, Text: "If full, stop.", Condition: domain.Optional("if full")}},
	}

	res, err := compiler.New().CompileInstructions(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, []string{"Open the lid.", "If full, stop."}, res.Steps)
	assert.Equal(t, 4, res.Stats.States)
}

func TestSanitize(t *testing.T) {
	out, err := compiler.Sanitize("a\x1b[31mb\tc\n", 0)
	require.NoError(t, err)
	assert.Equal(t, "a[31mb\tc\n", out)

	out, err = compiler.Sanitize("plain", 5)
	require.NoError(t, err)
	assert.Equal(t, "plain", out)
}
