package dsl

import "github.com/aretw0/manualfsm/pkg/domain"

// Builder manages the graph construction.
type Builder struct {
	states      map[string]*StateBuilder
	order       []string
	transitions []domain.Transition
}

// New creates a new graph builder.
func New() *Builder {
	return &Builder{
		states: make(map[string]*StateBuilder),
	}
}

// State returns the builder for the state with the given id, creating it on
// first use. States are emitted in the order they were first referenced here.
func (b *Builder) State(id string) *StateBuilder {
	if sb, ok := b.states[id]; ok {
		return sb
	}
	sb := &StateBuilder{
		state:   domain.State{ID: id},
		builder: b,
	}
	b.states[id] = sb
	b.order = append(b.order, id)
	return sb
}

// Start returns the state builder for id and marks it as the start state.
func (b *Builder) Start(id string) *StateBuilder {
	sb := b.State(id)
	sb.state.IsStart = true
	return sb
}

// Build materializes a fresh Graph. The builder can keep being used afterwards;
// later changes do not affect graphs already built.
func (b *Builder) Build() *domain.Graph {
	g := domain.NewGraph()
	for _, id := range b.order {
		g.AddState(b.states[id].state)
	}
	for _, t := range b.transitions {
		g.AddTransition(t)
	}
	return g
}
