package annotation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/manualfsm/pkg/domain"
)

// Annotator turns one instruction string into an Instruction.
// index is the 0-based position of the text in the manual.
type Annotator interface {
	Annotate(text string, index int) domain.Instruction
}

// AnnotateAll annotates every step in order.
func AnnotateAll(a Annotator, steps []string) []domain.Instruction {
	out := make([]domain.Instruction, 0, len(steps))
	for i, text := range steps {
		out = append(out, a.Annotate(text, i))
	}
	return out
}

var conditionalMarkers = []string{"if ", "when "}

const alternativeMarker = "otherwise"

// skipped when looking for the object of the verb
var fillers = map[string]bool{
	"the": true, "a": true, "an": true, "this": true, "that": true, "these": true,
	"those": true, "your": true, "its": true, "all": true, "any": true, "each": true,
	"off": true, "on": true, "up": true, "down": true, "out": true, "in": true,
	"to": true, "for": true, "with": true, "into": true, "onto": true, "at": true,
	"of": true, "from": true, "then": true, "and": true,
}

// Heuristic is a rule-based annotator.
type Heuristic struct{}

// NewHeuristic creates a heuristic annotator.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Annotate classifies text and extracts action, target and condition.
//
//	"If the light is red, press the button." -> conditional, condition "if the light is red"
//	"Otherwise, wait."                        -> branch_alternative, condition "otherwise"
//	"Press the button."                       -> imperative, action "press", target "button"
func (h *Heuristic) Annotate(text string, index int) domain.Instruction {
	parts := strings.Split(text, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	head := strings.ToLower(parts[0])

	step := domain.Step{ID: index, Text: text}
	actionPart := text
	kind := domain.KindImperative

	switch {
	case hasAnyPrefix(head, conditionalMarkers):
		kind = domain.KindConditional
		step.Condition = domain.Optional(lowerFirst(parts[0]))
		actionPart = strings.Join(parts[1:], ", ")
	case strings.HasPrefix(head, alternativeMarker):
		kind = domain.KindAlternative
		step.Condition = domain.Optional(alternativeMarker)
		actionPart = strings.Trim(dropRunes(strings.TrimSpace(text), utf8.RuneCountInString(alternativeMarker)), " ,")
	}

	step.Action, step.Target = verbObject(actionPart)

	switch kind {
	case domain.KindConditional:
		return domain.Conditional{Step: step}
	case domain.KindAlternative:
		return domain.Alternative{Step: step}
	default:
		return domain.Imperative{Step: step}
	}
}

// verbObject treats the first word as the verb and the first non-filler word
// after it as its object.
func verbObject(s string) (action, target *string) {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '\''
	})
	if len(words) == 0 {
		return nil, nil
	}
	action = domain.Optional(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		lw := strings.ToLower(w)
		if fillers[lw] {
			continue
		}
		target = domain.Optional(w)
		break
	}
	return action, target
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// dropRunes removes the first n runes of s. Lowercasing maps rune to rune, so
// a prefix matched on the lowered text spans the same runes of the original
// even when their byte widths differ.
func dropRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
