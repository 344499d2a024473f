package domain

// Reserved state ids emitted by the synthesizer.
const (
	StartStateID = "START"
	EndStateID   = "END"
)

// State represents a discrete step in the FSM.
// Identity is the ID; two states are never merged even if descriptions collide.
type State struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	IsStart     bool   `json:"is_start" yaml:"is_start"`
	IsTerminal  bool   `json:"is_terminal" yaml:"is_terminal"`
}

// Transition is a directed edge between two states.
// A nil Condition means an unconditional (default path) transition.
type Transition struct {
	SourceID  string  `json:"source_id" yaml:"source_id"`
	TargetID  string  `json:"target_id" yaml:"target_id"`
	Condition *string `json:"condition" yaml:"condition"`
	Action    *string `json:"action" yaml:"action"`
}

// Guarded reports whether the transition carries a condition.
func (t Transition) Guarded() bool {
	return t.Condition != nil
}

// Optional returns a pointer to s, for populating optional fields.
func Optional(s string) *string {
	return &s
}

// Deref returns the pointed value or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
