// Package validate statically checks the structural soundness of a Graph.
//
// It reports findings, never faults: a missing start state, states that cannot be
// reached from the start, and non-terminal states without an outgoing transition.
// The graph is only read.
package validate

import (
	"fmt"
	"strings"

	"github.com/aretw0/manualfsm/pkg/domain"
)

// Kind classifies a diagnostic.
type Kind string

const (
	KindMissingStart Kind = "missing_start"
	KindUnreachable  Kind = "unreachable"
	KindDeadEnd      Kind = "dead_end"
)

// Diagnostic is a single structural finding.
type Diagnostic struct {
	Kind     Kind     `json:"kind" yaml:"kind"`
	StateIDs []string `json:"state_ids,omitempty" yaml:"state_ids,omitempty"`
	Message  string   `json:"message" yaml:"message"`
}

func (d Diagnostic) String() string {
	return d.Message
}

// Validate returns the human-readable diagnostics for g.
// An empty result means no structural defects were found.
func Validate(g *domain.Graph) []string {
	diags := Check(g)
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Message)
	}
	return out
}

// Check runs the structural checks in order: missing start, reachability,
// dead ends. A missing start stops the remaining checks.
func Check(g *domain.Graph) []Diagnostic {
	start := g.StartStateID()
	if start == "" {
		return []Diagnostic{{
			Kind:    KindMissingStart,
			Message: "FSM has no start state.",
		}}
	}

	var diags []Diagnostic

	reachable := Reachable(g, start)
	var unreachable []string
	for _, s := range g.States() {
		if !reachable[s.ID] {
			unreachable = append(unreachable, s.ID)
		}
	}
	if len(unreachable) > 0 {
		diags = append(diags, Diagnostic{
			Kind:     KindUnreachable,
			StateIDs: unreachable,
			Message:  fmt.Sprintf("Unreachable states found: {%s}", strings.Join(unreachable, ", ")),
		})
	}

	hasOutgoing := make(map[string]bool)
	for _, t := range g.Transitions() {
		hasOutgoing[t.SourceID] = true
	}
	for _, s := range g.States() {
		if s.IsTerminal || hasOutgoing[s.ID] {
			continue
		}
		diags = append(diags, Diagnostic{
			Kind:     KindDeadEnd,
			StateIDs: []string{s.ID},
			Message:  fmt.Sprintf("Dead end found at state: %s (%s). Expected transition or terminal.", s.ID, s.Description),
		})
	}

	return diags
}

// Reachable returns the ids of the states reachable from start, following
// transitions source to target regardless of their guards. Ids that do not name
// an existing state are never marked reachable.
func Reachable(g *domain.Graph, start string) map[string]bool {
	adjacency := make(map[string][]string)
	for _, t := range g.Transitions() {
		adjacency[t.SourceID] = append(adjacency[t.SourceID], t.TargetID)
	}

	visited := make(map[string]bool)
	queue := []string{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] || !g.HasState(current) {
			continue
		}
		visited[current] = true

		for _, next := range adjacency[current] {
			if !visited[next] {
				queue = append(queue, next)
			}
		}
	}

	return visited
}
