package domain

import (
	"encoding/json"
	"fmt"
)

// Snapshot is the deterministic structural form of a Graph.
// Field names and nesting are a stable contract for renderers and persisted files.
type Snapshot struct {
	StartStateID *string      `json:"start_state_id" yaml:"start_state_id"`
	States       []State      `json:"states" yaml:"states"`
	Transitions  []Transition `json:"transitions" yaml:"transitions"`
}

// Snapshot captures the graph structure. Slices are never nil so that an empty
// graph serializes as [] rather than null.
func (g *Graph) Snapshot() Snapshot {
	snap := Snapshot{
		States:      g.States(),
		Transitions: g.Transitions(),
	}
	if g.startID != "" {
		snap.StartStateID = Optional(g.startID)
	}
	return snap
}

// FromSnapshot rebuilds a Graph from a snapshot.
// The snapshot's start_state_id is authoritative, even if it disagrees with the
// is_start flags, so that a round trip is lossless.
func FromSnapshot(snap Snapshot) *Graph {
	g := NewGraph()
	for _, s := range snap.States {
		g.AddState(s)
	}
	for _, t := range snap.Transitions {
		g.AddTransition(t)
	}
	g.startID = Deref(snap.StartStateID)
	return g
}

// MarshalJSON serializes the graph as its Snapshot.
func (g *Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Snapshot())
}

// UnmarshalJSON replaces the graph with the decoded snapshot.
func (g *Graph) UnmarshalJSON(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to decode graph snapshot: %w", err)
	}
	*g = *FromSnapshot(snap)
	return nil
}

// Stats summarizes the size of a snapshot.
type Stats struct {
	States      int `json:"states" yaml:"states"`
	Transitions int `json:"transitions" yaml:"transitions"`
}

// Stats returns the state and transition counts.
func (s Snapshot) Stats() Stats {
	return Stats{States: len(s.States), Transitions: len(s.Transitions)}
}
