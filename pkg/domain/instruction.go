package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an annotated instruction.
type Kind string

const (
	// KindImperative is a plain command ("Press the button.").
	KindImperative Kind = "imperative"
	// KindConditional is a guarded command ("If the light is red, wait.").
	KindConditional Kind = "conditional"
	// KindAlternative is the "otherwise" arm of the preceding conditional.
	KindAlternative Kind = "branch_alternative"
)

// ErrUnknownKind is returned when a record carries a kind outside the known set.
var ErrUnknownKind = errors.New("unknown instruction kind")

// Step holds the fields shared by every instruction variant.
type Step struct {
	// ID is the 0-based position in the instruction sequence.
	ID   int
	Text string

	Action    *string
	Target    *string
	Condition *string
}

// Instruction is one annotated step of a manual.
// The set of implementations is closed: Imperative, Conditional and Alternative.
type Instruction interface {
	Kind() Kind
	Base() Step
	sealed()
}

// Imperative is an unguarded command.
type Imperative struct{ Step }

// Conditional is a command guarded by its Condition.
type Conditional struct{ Step }

// Alternative is the "otherwise" arm of the most recent conditional.
type Alternative struct{ Step }

func (i Imperative) Kind() Kind  { return KindImperative }
func (i Conditional) Kind() Kind { return KindConditional }
func (i Alternative) Kind() Kind { return KindAlternative }

func (i Imperative) Base() Step  { return i.Step }
func (i Conditional) Base() Step { return i.Step }
func (i Alternative) Base() Step { return i.Step }

func (Imperative) sealed()  {}
func (Conditional) sealed() {}
func (Alternative) sealed() {}

// Record is the flat wire shape produced by annotators.
type Record struct {
	ID        int     `json:"id" yaml:"id" mapstructure:"id"`
	Text      string  `json:"text" yaml:"text" mapstructure:"text"`
	Action    *string `json:"action" yaml:"action" mapstructure:"action"`
	Target    *string `json:"target" yaml:"target" mapstructure:"target"`
	Condition *string `json:"condition" yaml:"condition" mapstructure:"condition"`
	Kind      Kind    `json:"kind" yaml:"kind" mapstructure:"kind"`
}

// Instruction converts the record into its variant.
// An empty kind is treated as imperative.
func (r Record) Instruction() (Instruction, error) {
	step := Step{
		ID:        r.ID,
		Text:      r.Text,
		Action:    r.Action,
		Target:    r.Target,
		Condition: r.Condition,
	}
	switch r.Kind {
	case KindImperative, "":
		return Imperative{step}, nil
	case KindConditional:
		return Conditional{step}, nil
	case KindAlternative:
		return Alternative{step}, nil
	default:
		return nil, fmt.Errorf("%w: %q (record %d)", ErrUnknownKind, r.Kind, r.ID)
	}
}

// RecordOf flattens an instruction back into its wire shape.
func RecordOf(in Instruction) Record {
	s := in.Base()
	return Record{
		ID:        s.ID,
		Text:      s.Text,
		Action:    s.Action,
		Target:    s.Target,
		Condition: s.Condition,
		Kind:      in.Kind(),
	}
}
