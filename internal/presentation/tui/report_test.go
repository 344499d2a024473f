package tui

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/manualfsm/pkg/compiler"
	"github.com/aretw0/manualfsm/pkg/validate"
)

func TestReport(t *testing.T) {
	res, err := compiler.New().Compile(context.Background(),
		"1. Approach the intersection.\n2. If the light is red, stop the car.")
	require.NoError(t, err)

	md := Report(res)
	assert.Contains(t, md, "1. Approach the intersection.")
	assert.Contains(t, md, "2. If the light is red, stop the car. _(conditional)_")
	assert.Contains(t, md, "- States: 4")
	assert.Contains(t, md, "- Transitions: 3")
	assert.Contains(t, md, "Valid: no structural defects found.")
}

func TestReport_ListsDefects(t *testing.T) {
	res := &compiler.Result{
		Diagnostics: []validate.Diagnostic{
			{Kind: validate.KindDeadEnd, Message: "Dead end found at state: S1 (Wait). Expected transition or terminal."},
		},
	}

	md := Report(res)
	assert.Contains(t, md, "_No steps found._")
	assert.Contains(t, md, "- Dead end found at state: S1 (Wait).")
	assert.NotContains(t, md, "Valid:")
}

func TestPrinter_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	require.NoError(t, p.Markdown("# Title\n"))
	p.Status(false, "2 defects")

	assert.Equal(t, "# Title\n2 defects\n", buf.String())
	assert.False(t, IsTerminal(&buf))
}
