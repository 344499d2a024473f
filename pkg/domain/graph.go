package domain

// Graph is the finite state machine container.
//
// It is populated incrementally (AddState, AddTransition) and performs no
// referential checks: a transition may point to a state that does not exist yet,
// or at all. Detecting that is the validator's job.
type Graph struct {
	states      map[string]State
	order       []string
	transitions []Transition
	startID     string
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		states: make(map[string]State),
	}
}

// AddState inserts or overwrites the state under its id.
// An overwritten state keeps its original position. If the state is a start
// state, it becomes the graph's start state (last write wins).
func (g *Graph) AddState(s State) {
	if _, exists := g.states[s.ID]; !exists {
		g.order = append(g.order, s.ID)
	}
	g.states[s.ID] = s
	if s.IsStart {
		g.startID = s.ID
	}
}

// AddTransition appends a transition.
func (g *Graph) AddTransition(t Transition) {
	g.transitions = append(g.transitions, t)
}

// StartStateID returns the cached start state id, or "" when none was added.
func (g *Graph) StartStateID() string {
	return g.startID
}

// State looks up a state by id.
func (g *Graph) State(id string) (State, bool) {
	s, ok := g.states[id]
	return s, ok
}

// HasState reports whether a state with the given id exists.
func (g *Graph) HasState(id string) bool {
	_, ok := g.states[id]
	return ok
}

// States returns the states in insertion order.
func (g *Graph) States() []State {
	out := make([]State, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.states[id])
	}
	return out
}

// Transitions returns a copy of the transitions in insertion order.
func (g *Graph) Transitions() []Transition {
	out := make([]Transition, len(g.transitions))
	copy(out, g.transitions)
	return out
}

// StateCount returns the number of distinct states.
func (g *Graph) StateCount() int {
	return len(g.order)
}

// TransitionCount returns the number of transitions.
func (g *Graph) TransitionCount() int {
	return len(g.transitions)
}
