package annotation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/manualfsm/pkg/annotation"
	"github.com/aretw0/manualfsm/pkg/domain"
)

func TestDecode(t *testing.T) {
	raw := []map[string]any{
		{"id": 0, "text": "Press the button.", "action": "press", "target": "button", "kind": "imperative"},
		{"text": "If hot, cool.", "condition": "if hot", "type": "conditional"},
		{"id": "2", "text": "Otherwise, heat.", "condition": "otherwise", "kind": "branch_alternative", "action": nil},
	}

	got, err := annotation.Decode(raw)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.IsType(t, domain.Imperative{}, got[0])
	assert.Equal(t, "button", domain.Deref(got[0].Base().Target))

	assert.IsType(t, domain.Conditional{}, got[1])
	assert.Equal(t, 1, got[1].Base().ID)
	assert.Equal(t, "if hot", domain.Deref(got[1].Base().Condition))

	assert.IsType(t, domain.Alternative{}, got[2])
	assert.Equal(t, 2, got[2].Base().ID)
	assert.Nil(t, got[2].Base().Action)
}

func TestDecode_AggregatesErrors(t *testing.T) {
	raw := []map[string]any{
		{"text": "ok"},
		{"text": "bad", "kind": "branch_start"},
		{"text": "worse", "colour": "red"},
	}

	_, err := annotation.Decode(raw)
	require.Error(t, err)

	var decodeErr *annotation.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Len(t, decodeErr.Errors, 2)
	assert.True(t, errors.Is(err, domain.ErrUnknownKind))
	assert.Contains(t, err.Error(), "2 invalid records")
}

func TestParse_JSONAndYAML(t *testing.T) {
	jsonInput := []byte(`[{"id":0,"text":"Press.","kind":"imperative","condition":null}]`)
	yamlInput := []byte("- text: Press.\n  kind: imperative\n")

	for name, data := range map[string][]byte{"json": jsonInput, "yaml": yamlInput} {
		t.Run(name, func(t *testing.T) {
			got, err := annotation.Parse(data)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "Press.", got[0].Base().Text)
			assert.Nil(t, got[0].Base().Condition)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := annotation.Parse([]byte("{not: [a list"))
	assert.Error(t, err)
}
