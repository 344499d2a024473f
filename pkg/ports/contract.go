package ports

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/manualfsm/pkg/domain"
)

// RunSnapshotStoreContract runs a suite of tests to verify that a SnapshotStore
// implementation adheres to the defined interface contract.
func RunSnapshotStoreContract(t *testing.T, store SnapshotStore) {
	ctx := context.Background()
	graphID := "contract-" + time.Now().Format("20060102150405")

	snap := func() domain.Snapshot {
		g := domain.NewGraph()
		g.AddState(domain.State{ID: "START", Description: "Start", IsStart: true})
		g.AddState(domain.State{ID: "S1", Description: "If hot, wait."})
		g.AddState(domain.State{ID: "END", Description: "End", IsTerminal: true})
		g.AddTransition(domain.Transition{SourceID: "START", TargetID: "S1", Condition: domain.Optional("if hot")})
		g.AddTransition(domain.Transition{SourceID: "S1", TargetID: "END"})
		return g.Snapshot()
	}()

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, graphID, snap)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, graphID)
		require.NoError(t, err, "Load should not return error")

		want, _ := json.Marshal(snap)
		got, _ := json.Marshal(loaded)
		assert.Equal(t, string(want), string(got), "stored snapshot must round-trip losslessly")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+graphID)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, graphID, snap))

		err := store.Delete(ctx, graphID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, graphID)
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound, "Load after Delete should return ErrSnapshotNotFound")

		assert.NoError(t, store.Delete(ctx, graphID), "Delete of a missing id should be a no-op")
	})

	t.Run("List", func(t *testing.T) {
		id1 := graphID + "-1"
		id2 := graphID + "-2"
		_ = store.Save(ctx, id1, snap)
		_ = store.Save(ctx, id2, snap)

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}
