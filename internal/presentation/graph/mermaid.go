package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/manualfsm/pkg/domain"
)

// Overlay carries analysis data to highlight on the diagram.
type Overlay struct {
	// Flagged lists states involved in a diagnostic (unreachable, dead end).
	Flagged []string
}

// Mermaid produces a Mermaid flowchart from a snapshot.
// It applies semantic shapes:
// - Start: ((Circle))
// - Terminal: (((Double circle)))
// - Default: [Rectangle]
// Guarded edges carry their condition (and action, if any) as a label.
func Mermaid(snap domain.Snapshot, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, s := range snap.States {
		safeID := sanitizeMermaidID(s.ID)

		opener, closer := "[", "]"
		switch {
		case s.IsStart:
			opener, closer = "((", "))"
		case s.IsTerminal:
			opener, closer = "(((", ")))"
		}

		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, mermaidText(label(s)), closer))
	}

	for _, t := range snap.Transitions {
		from := sanitizeMermaidID(t.SourceID)
		to := sanitizeMermaidID(t.TargetID)

		arrow := "-->"
		if text := edgeLabel(t); text != "" {
			arrow = fmt.Sprintf("-- \"%s\" -->", mermaidText(text))
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", from, arrow, to))
	}

	if overlay != nil && len(overlay.Flagged) > 0 {
		sb.WriteString("\n    %% Diagnostics\n")
		sb.WriteString("    classDef flagged fill:#ffebee,stroke:#c62828,stroke-width:2px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.Flagged {
			safeID := sanitizeMermaidID(id)
			if safeID == "" || seen[safeID] {
				continue
			}
			seen[safeID] = true
			sb.WriteString(fmt.Sprintf("    class %s flagged;\n", safeID))
		}
	}

	return sb.String()
}

func label(s domain.State) string {
	if s.Description == "" {
		return s.ID
	}
	return s.Description
}

// edgeLabel formats "condition / action", omitting absent parts.
func edgeLabel(t domain.Transition) string {
	cond := domain.Deref(t.Condition)
	action := domain.Deref(t.Action)
	switch {
	case cond != "" && action != "":
		return cond + " / " + action
	case action != "":
		return "/ " + action
	default:
		return cond
	}
}

func mermaidText(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_")
	return r.Replace(id)
}
