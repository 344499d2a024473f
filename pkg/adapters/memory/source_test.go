package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/manualfsm/pkg/adapters/memory"
	"github.com/aretw0/manualfsm/pkg/domain"
)

func TestLibrary(t *testing.T) {
	ctx := context.Background()
	lib := memory.NewLibrary(domain.Manual{ID: "b", Text: "Wait."})
	lib.Put(domain.Manual{ID: "a", Title: "Traffic", Text: "1. Approach the intersection."})

	ids, err := lib.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	m, err := lib.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Traffic", m.Title)

	_, err = lib.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrManualNotFound)
}
