package synth

import (
	"fmt"
	"strconv"

	"github.com/aretw0/manualfsm/pkg/domain"
)

// Strategy selects how instructions are wired together.
type Strategy string

const (
	// Linear chains every instruction sequentially.
	Linear Strategy = "linear"
	// Branching links conditionals and their alternatives to a shared anchor.
	Branching Strategy = "branching"
)

// ParseStrategy validates a strategy name. An empty name selects Linear.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case "", Linear:
		return Linear, nil
	case Branching:
		return Branching, nil
	default:
		return "", fmt.Errorf("unknown synthesis strategy %q (want %q or %q)", name, Linear, Branching)
	}
}

const (
	startDescription = "Start"
	endDescription   = "End"
	joinDescription  = "Join"
)

// Synthesizer builds graphs from instructions. It holds no per-graph state and
// is safe for concurrent use; every call returns a fresh Graph.
type Synthesizer struct {
	strategy Strategy
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithStrategy selects the wiring strategy (default: Linear).
func WithStrategy(s Strategy) Option {
	return func(sy *Synthesizer) {
		sy.strategy = s
	}
}

// New creates a Synthesizer.
func New(opts ...Option) *Synthesizer {
	sy := &Synthesizer{strategy: Linear}
	for _, opt := range opts {
		opt(sy)
	}
	return sy
}

// Strategy returns the configured strategy.
func (sy *Synthesizer) Strategy() Strategy {
	return sy.strategy
}

// Synthesize builds a graph from the instructions in order.
func (sy *Synthesizer) Synthesize(instructions []domain.Instruction) *domain.Graph {
	if sy.strategy == Branching {
		return synthesizeBranching(instructions)
	}
	return synthesizeLinear(instructions)
}

// Synthesize builds a linear chain from the instructions.
func Synthesize(instructions []domain.Instruction) *domain.Graph {
	return synthesizeLinear(instructions)
}

// StateID returns the state id allocated to the instruction at position i.
func StateID(i int) string {
	return "S" + strconv.Itoa(i+1)
}

func synthesizeLinear(instructions []domain.Instruction) *domain.Graph {
	g := domain.NewGraph()
	g.AddState(domain.State{ID: domain.StartStateID, Description: startDescription, IsStart: true})

	prev := domain.StartStateID
	for i, in := range instructions {
		step := in.Base()
		id := StateID(i)
		g.AddState(domain.State{ID: id, Description: step.Text})
		g.AddTransition(domain.Transition{
			SourceID:  prev,
			TargetID:  id,
			Condition: step.Condition,
		})
		prev = id
	}

	g.AddState(domain.State{ID: domain.EndStateID, Description: endDescription, IsTerminal: true})
	g.AddTransition(domain.Transition{SourceID: prev, TargetID: domain.EndStateID})
	return g
}
