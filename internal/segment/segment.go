// Package segment splits raw manual text into instruction strings.
package segment

import (
	"regexp"
	"strings"
)

var (
	// Leading step markers: "1.", "2)", "Step 3:", "step 4." ...
	stepMarker = regexp.MustCompile(`(?i)^(step\s+)?\d+[.):]\s*`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Lines splits text on newlines, trims each line, strips a leading step
// marker and drops lines left empty. Order is preserved.
func Lines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var steps []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimSpace(stepMarker.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		steps = append(steps, line)
	}
	return steps
}

// Clean collapses runs of whitespace (including newlines) into a single space.
func Clean(text string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}
