package dsl

import "github.com/aretw0/manualfsm/pkg/domain"

// StateBuilder provides a fluent API for configuring a state and its outgoing edges.
type StateBuilder struct {
	state   domain.State
	builder *Builder
}

// Describe sets the human-readable description.
func (s *StateBuilder) Describe(description string) *StateBuilder {
	s.state.Description = description
	return s
}

// Go adds an unconditional transition to the target state.
func (s *StateBuilder) Go(target string) *StateBuilder {
	return s.add(domain.Transition{TargetID: target})
}

// Branch adds a conditional transition to the target state.
func (s *StateBuilder) Branch(condition string, target string) *StateBuilder {
	return s.add(domain.Transition{TargetID: target, Condition: domain.Optional(condition)})
}

// Do adds an unconditional transition that requires an explicit action.
func (s *StateBuilder) Do(action string, target string) *StateBuilder {
	return s.add(domain.Transition{TargetID: target, Action: domain.Optional(action)})
}

// Terminal marks the state as a terminal state (end of the procedure).
func (s *StateBuilder) Terminal() *StateBuilder {
	s.state.IsTerminal = true
	return s
}

// Build returns the underlying domain.State.
func (s *StateBuilder) Build() domain.State {
	return s.state
}

func (s *StateBuilder) add(t domain.Transition) *StateBuilder {
	t.SourceID = s.state.ID
	s.builder.transitions = append(s.builder.transitions, t)
	return s
}
