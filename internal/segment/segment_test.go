package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"blank lines dropped", "\n  \n\t\n", nil},
		{
			name: "numbered steps",
			in:   "1. Press the button.\n2) If the light is red, wait.\nStep 3: Otherwise, continue.",
			want: []string{"Press the button.", "If the light is red, wait.", "Otherwise, continue."},
		},
		{
			name: "windows newlines and indentation",
			in:   "   Open the lid.\r\n\r\n   Close the lid.   \r\n",
			want: []string{"Open the lid.", "Close the lid."},
		},
		{"marker only line dropped", "4.\nTurn it off.", []string{"Turn it off."}},
		{"number inside text kept", "Wait 5 minutes.", []string{"Wait 5 minutes."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines(tt.in))
		})
	}
}

func TestClean(t *testing.T) {
	assert.Equal(t, "", Clean(""))
	assert.Equal(t, "Press the button now.", Clean("  Press   the\nbutton \t now.  "))
}
