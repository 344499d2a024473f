package domain

import (
	"errors"
	"testing"
)

func TestRecordInstruction(t *testing.T) {
	cond := "if the light is red"
	tests := []struct {
		name   string
		record Record
		want   Kind
	}{
		{"empty kind is imperative", Record{ID: 0, Text: "Press."}, KindImperative},
		{"imperative", Record{Kind: KindImperative}, KindImperative},
		{"conditional", Record{Kind: KindConditional, Condition: &cond}, KindConditional},
		{"alternative", Record{Kind: KindAlternative}, KindAlternative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := tt.record.Instruction()
			if err != nil {
				t.Fatalf("Instruction() error = %v", err)
			}
			if in.Kind() != tt.want {
				t.Errorf("Kind() = %q, want %q", in.Kind(), tt.want)
			}
			back := RecordOf(in)
			if back.Kind != tt.want {
				t.Errorf("RecordOf().Kind = %q, want %q", back.Kind, tt.want)
			}
			if back.Condition != tt.record.Condition {
				t.Errorf("RecordOf() lost the condition pointer")
			}
		})
	}
}

func TestRecordInstruction_UnknownKind(t *testing.T) {
	_, err := Record{ID: 3, Kind: "branch_start"}.Instruction()
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}
