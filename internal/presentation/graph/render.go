package graph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/manualfsm/pkg/domain"
)

// Format names a textual graph rendering.
type Format string

const (
	FormatDot     Format = "dot"
	FormatMermaid Format = "mermaid"
)

// ErrUnknownFormat is returned for renderings other than dot and mermaid.
var ErrUnknownFormat = errors.New("unknown graph format")

// ParseFormat accepts "dot", "graphviz", "mermaid" and "mmd", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dot", "graphviz", "gv":
		return FormatDot, nil
	case "mermaid", "mmd":
		return FormatMermaid, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Render draws snap in the given format. The overlay only applies to Mermaid.
func Render(snap domain.Snapshot, format Format, overlay *Overlay) (string, error) {
	switch format {
	case FormatDot:
		return Dot(snap), nil
	case FormatMermaid:
		return Mermaid(snap, overlay), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
