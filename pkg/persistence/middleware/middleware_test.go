package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/manualfsm/internal/logging"
	"github.com/aretw0/manualfsm/pkg/adapters/memory"
	"github.com/aretw0/manualfsm/pkg/domain"
	"github.com/aretw0/manualfsm/pkg/persistence/middleware"
	"github.com/aretw0/manualfsm/pkg/ports"
)

func sampleSnapshot() domain.Snapshot {
	return domain.Snapshot{
		StartStateID: domain.Optional("START"),
		States: []domain.State{
			{ID: "START", Description: "Start", IsStart: true},
			{ID: "STEP_1", Description: "Enter password hunter2 at the prompt"},
			{ID: "END", Description: "End", IsTerminal: true},
		},
		Transitions: []domain.Transition{
			{SourceID: "START", TargetID: "STEP_1"},
			{SourceID: "STEP_1", TargetID: "END", Condition: domain.Optional("password hunter2 accepted"), Action: domain.Optional("call 555-0100")},
		},
	}
}

func TestChain_Contract(t *testing.T) {
	redact, err := middleware.NewRedactMiddleware(nil)
	require.NoError(t, err)

	store := middleware.Chain(memory.NewStore(),
		middleware.NewLoggingMiddleware(logging.NewNop()),
		redact,
		nil,
	)
	ports.RunSnapshotStoreContract(t, store)
}

type recordingStore struct {
	ports.SnapshotStore
	calls *[]string
	name  string
}

func (r recordingStore) List(ctx context.Context) ([]string, error) {
	*r.calls = append(*r.calls, r.name)
	return r.SnapshotStore.List(ctx)
}

func TestChain_Order(t *testing.T) {
	var calls []string
	tag := func(name string) middleware.Middleware {
		return func(next ports.SnapshotStore) ports.SnapshotStore {
			return recordingStore{SnapshotStore: next, calls: &calls, name: name}
		}
	}

	store := middleware.Chain(memory.NewStore(), tag("outer"), tag("inner"))
	_, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, calls)
}

func TestRedact_MasksTextOnSave(t *testing.T) {
	ctx := context.Background()
	underlying := memory.NewStore()
	redact, err := middleware.NewRedactMiddleware([]string{`hunter\d`, `\d{3}-\d{4}`})
	require.NoError(t, err)
	store := redact(underlying)

	snap := sampleSnapshot()
	require.NoError(t, store.Save(ctx, "g", snap))

	stored, err := underlying.Load(ctx, "g")
	require.NoError(t, err)
	assert.Equal(t, "Enter password *** at the prompt", stored.States[1].Description)
	assert.Equal(t, "password *** accepted", domain.Deref(stored.Transitions[1].Condition))
	assert.Equal(t, "call ***", domain.Deref(stored.Transitions[1].Action))
	assert.Nil(t, stored.Transitions[0].Condition)
	assert.Equal(t, "STEP_1", stored.States[1].ID, "ids are never masked")

	assert.Equal(t, "Enter password hunter2 at the prompt", snap.States[1].Description, "caller snapshot untouched")
	assert.Equal(t, "password hunter2 accepted", domain.Deref(snap.Transitions[1].Condition))
}

func TestRedact_InvalidPattern(t *testing.T) {
	_, err := middleware.NewRedactMiddleware([]string{"(unclosed"})
	assert.Error(t, err)
}

func TestLogging_RecordsCalls(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := logging.NewWithFormat(&buf, slog.LevelDebug, logging.FormatJSON)
	store := middleware.NewLoggingMiddleware(logger)(memory.NewStore())

	require.NoError(t, store.Save(ctx, "g", sampleSnapshot()))
	_, err := store.Load(ctx, "missing")
	require.True(t, errors.Is(err, domain.ErrSnapshotNotFound), "errors pass through unchanged")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var save, load map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &save))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &load))

	assert.Equal(t, "save", save["op"])
	assert.Equal(t, "g", save["graph_id"])
	assert.EqualValues(t, 3, save["states"])
	assert.Equal(t, "DEBUG", save["level"])

	assert.Equal(t, "load", load["op"])
	assert.Equal(t, "WARN", load["level"])
	assert.Contains(t, load["err"], "not found")
}
