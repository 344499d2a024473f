package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/manualfsm"
	"github.com/aretw0/manualfsm/internal/config"
	"github.com/aretw0/manualfsm/internal/logging"
	"github.com/aretw0/manualfsm/internal/testutils"
	"github.com/aretw0/manualfsm/pkg/adapters/memory"
	"github.com/aretw0/manualfsm/pkg/domain"
)

const traffic = testutils.TrafficManual

func TestRunCompile_WritesOutputs(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "manual.txt")
	require.NoError(t, os.WriteFile(input, []byte(traffic), 0o644))
	base := filepath.Join(dir, "out")

	eng, err := manualfsm.New()
	require.NoError(t, err)

	var out bytes.Buffer
	err = runCompile(context.Background(), eng, nil, &out, compileOptions{Input: input, Output: base})
	require.NoError(t, err)

	report := out.String()
	assert.Contains(t, report, "1. Approach the intersection.")
	assert.Contains(t, report, "- States: 5")
	assert.Contains(t, report, "FSM is valid.")

	snap, err := readSnapshot(base + ".json")
	require.NoError(t, err)
	assert.Len(t, snap.States, 5)

	dot, err := os.ReadFile(base + ".dot")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(dot), "// Technical Manual FSM"))
}

func TestRunCompile_YAMLAndStdin(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out")
	eng, err := manualfsm.New()
	require.NoError(t, err)

	var out bytes.Buffer
	err = runCompile(context.Background(), eng, strings.NewReader("Press the button."), &out,
		compileOptions{Input: "-", Output: base, Format: "yaml", Save: true})
	require.NoError(t, err)

	snap, err := readSnapshot(base + ".yaml")
	require.NoError(t, err)
	assert.Equal(t, "START", domain.Deref(snap.StartStateID))
	assert.Len(t, snap.Transitions, 2)

	ids, err := eng.Graphs(context.Background())
	require.NoError(t, err)
	assert.Len(t, ids, 1, "--save persists the graph")
}

func TestRunCompile_Annotations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"text": "Approach the intersection."}, {"text": "If red, stop.", "type": "conditional", "condition": "if red"}]`), 0o644))

	eng, err := manualfsm.New()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runCompile(context.Background(), eng, nil, &out, compileOptions{Annotations: path}))
	assert.Contains(t, out.String(), "_(conditional)_")
}

func TestRunCompile_Manual(t *testing.T) {
	lib := memory.NewLibrary(domain.Manual{ID: "traffic", Text: traffic})
	eng, err := manualfsm.New(manualfsm.WithLibrary(lib))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runCompile(context.Background(), eng, nil, &out, compileOptions{Manual: "traffic"}))
	assert.Contains(t, out.String(), "3. Otherwise, proceed.")

	err = runCompile(context.Background(), eng, nil, &out, compileOptions{Manual: "missing"})
	assert.ErrorIs(t, err, domain.ErrManualNotFound)
}

func TestRunCompile_Errors(t *testing.T) {
	eng, err := manualfsm.New()
	require.NoError(t, err)

	var out bytes.Buffer
	assert.Error(t, runCompile(context.Background(), eng, nil, &out, compileOptions{}), "no input")
	assert.Error(t, runCompile(context.Background(), eng, nil, &out, compileOptions{Input: "/does/not/exist"}))
	assert.Error(t, runCompile(context.Background(), eng, strings.NewReader("x"), &out,
		compileOptions{Input: "-", Output: filepath.Join(t.TempDir(), "o"), Format: "xml"}))
}

func TestRunValidate(t *testing.T) {
	var out bytes.Buffer

	clean := domain.Snapshot{
		StartStateID: domain.Optional("A"),
		States: []domain.State{
			{ID: "A", IsStart: true},
			{ID: "B", IsTerminal: true},
		},
		Transitions: []domain.Transition{{SourceID: "A", TargetID: "B"}},
	}
	require.NoError(t, runValidate(&out, clean))
	assert.Contains(t, out.String(), "Graph is valid!")

	out.Reset()
	broken := domain.Snapshot{States: []domain.State{{ID: "A"}}}
	err := runValidate(&out, broken)
	assert.ErrorIs(t, err, errDefects)
	assert.Contains(t, out.String(), "- FSM has no start state.")
}

func TestRunGraph(t *testing.T) {
	snap := domain.Snapshot{
		StartStateID: domain.Optional("A"),
		States: []domain.State{
			{ID: "A", Description: "Start", IsStart: true},
			{ID: "B", Description: "Stuck"},
		},
		Transitions: []domain.Transition{{SourceID: "A", TargetID: "B", Condition: domain.Optional("if ready")}},
	}

	var out bytes.Buffer
	require.NoError(t, runGraph(&out, snap, "mermaid"))
	assert.Contains(t, out.String(), `A -- "if ready" --> B`)
	assert.Contains(t, out.String(), "class B flagged;")

	out.Reset()
	require.NoError(t, runGraph(&out, snap, "dot"))
	assert.Contains(t, out.String(), "digraph {")

	assert.Error(t, runGraph(&out, snap, "png"))
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version", "--config", writeConfig(t)})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "manualfsm version "+manualfsm.Version+"\n", out.String())
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manualfsm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy: branching\nlog:\n  level: warn\n"), 0o644))
	return path
}

func TestNewStore_FileWithRedaction(t *testing.T) {
	ctx := context.Background()
	c := config.Default()
	c.Store.Driver = config.DriverFile
	c.Store.Dir = t.TempDir()
	c.Store.Redact = []string{`hunter\d`}

	store, closer, err := newStore(ctx, c, logging.NewNop())
	require.NoError(t, err)
	defer func() { _ = closer() }()

	snap := domain.Snapshot{
		StartStateID: domain.Optional("START"),
		States:       []domain.State{{ID: "START", Description: "type hunter2", IsStart: true, IsTerminal: true}},
		Transitions:  []domain.Transition{},
	}
	require.NoError(t, store.Save(ctx, "secret", snap))

	raw, err := os.ReadFile(filepath.Join(c.Store.Dir, "secret.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hunter2")
	assert.Contains(t, string(raw), "type ***")
}

func TestNewStore_InvalidRedact(t *testing.T) {
	c := config.Default()
	c.Store.Redact = []string{"("}

	_, closer, err := newStore(context.Background(), c, logging.NewNop())
	assert.Error(t, err)
	assert.NotNil(t, closer)
}

func TestNewLibrary(t *testing.T) {
	lib, err := newLibrary(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Nil(t, lib, "a missing library directory is not an error")

	file := filepath.Join(t.TempDir(), "manual.md")
	testutils.WriteManuals(t, filepath.Dir(file), map[string]string{"manual.md": traffic})
	_, err = newLibrary(file)
	assert.Error(t, err)
}
