// Package graph renders FSM snapshots as diagram source (Mermaid, Graphviz DOT).
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/manualfsm/pkg/domain"
)

// Dot produces Graphviz source laid out left to right.
// Start states are filled ellipses, terminal states filled double circles,
// everything else a box.
func Dot(snap domain.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("// Technical Manual FSM\n")
	sb.WriteString("digraph {\n")
	sb.WriteString("\trankdir=LR\n")

	for _, s := range snap.States {
		attrs := []string{"label=" + dotQuote(s.Description)}
		switch {
		case s.IsStart:
			attrs = append(attrs, "shape=ellipse", "style=filled")
		case s.IsTerminal:
			attrs = append(attrs, "shape=doublecircle", "style=filled")
		default:
			attrs = append(attrs, "shape=box")
		}
		sb.WriteString(fmt.Sprintf("\t%s [%s]\n", dotQuote(s.ID), strings.Join(attrs, " ")))
	}

	for _, t := range snap.Transitions {
		line := fmt.Sprintf("\t%s -> %s", dotQuote(t.SourceID), dotQuote(t.TargetID))
		if text := edgeLabel(t); text != "" {
			line += fmt.Sprintf(" [label=%s]", dotQuote(text))
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString("}\n")
	return sb.String()
}

func dotQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}
