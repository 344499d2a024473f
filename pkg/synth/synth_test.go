package synth_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/manualfsm/pkg/domain"
	"github.com/aretw0/manualfsm/pkg/synth"
	"github.com/aretw0/manualfsm/pkg/validate"
)

func imperative(id int, text string) domain.Instruction {
	return domain.Imperative{Step: domain.Step{ID: id, Text: text}}
}

func conditional(id int, text, cond string) domain.Instruction {
	return domain.Conditional{Step: domain.Step{ID: id, Text: text, Condition: domain.Optional(cond)}}
}

func alternative(id int, text string) domain.Instruction {
	return domain.Alternative{Step: domain.Step{ID: id, Text: text, Condition: domain.Optional("otherwise")}}
}

type edge struct {
	from, to, cond string
	guarded        bool
}

func edges(g *domain.Graph) []edge {
	var out []edge
	for _, t := range g.Transitions() {
		out = append(out, edge{t.SourceID, t.TargetID, domain.Deref(t.Condition), t.Guarded()})
	}
	return out
}

func ids(g *domain.Graph) []string {
	var out []string
	for _, s := range g.States() {
		out = append(out, s.ID)
	}
	return out
}

func TestSynthesize_EndToEndExample(t *testing.T) {
	g := synth.Synthesize([]domain.Instruction{
		imperative(0, "Press the button."),
		conditional(1, "If the light is red, wait.", "if the light is red"),
	})

	assert.Equal(t, []string{"START", "S1", "S2", "END"}, ids(g))
	assert.Equal(t, []edge{
		{"START", "S1", "", false},
		{"S1", "S2", "if the light is red", true},
		{"S2", "END", "", false},
	}, edges(g))
	assert.Equal(t, "START", g.StartStateID())

	s2, ok := g.State("S2")
	require.True(t, ok)
	assert.Equal(t, "If the light is red, wait.", s2.Description)

	end, _ := g.State("END")
	assert.True(t, end.IsTerminal)
}

func TestSynthesize_Empty(t *testing.T) {
	g := synth.Synthesize(nil)

	assert.Equal(t, []string{"START", "END"}, ids(g))
	assert.Equal(t, []edge{{"START", "END", "", false}}, edges(g))
}

func TestSynthesize_Counts(t *testing.T) {
	for _, n := range []int{1, 2, 5, 40} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			var in []domain.Instruction
			for i := 0; i < n; i++ {
				switch i % 3 {
				case 0:
					in = append(in, imperative(i, fmt.Sprintf("Step %d.", i)))
				case 1:
					in = append(in, conditional(i, "If hot, cool.", "if hot"))
				default:
					in = append(in, alternative(i, "Otherwise, heat."))
				}
			}

			g := synth.Synthesize(in)
			assert.Equal(t, n+2, g.StateCount())
			assert.Equal(t, n+1, g.TransitionCount())
			assert.Equal(t, "START", g.StartStateID())
			assert.Empty(t, validate.Validate(g))
		})
	}
}

func TestSynthesize_LinearChainsAlternatives(t *testing.T) {
	g := synth.Synthesize([]domain.Instruction{
		conditional(0, "If the tank is full, close the valve.", "if the tank is full"),
		alternative(1, "Otherwise, open the valve."),
	})

	assert.Equal(t, []edge{
		{"START", "S1", "if the tank is full", true},
		{"S1", "S2", "otherwise", true},
		{"S2", "END", "", false},
	}, edges(g))
}

func TestSynthesize_EmptyTextStillYieldsState(t *testing.T) {
	g := synth.Synthesize([]domain.Instruction{imperative(0, "")})

	s1, ok := g.State("S1")
	require.True(t, ok)
	assert.Equal(t, "", s1.Description)
}

func TestSynthesize_DescriptionIgnoresStructuredFields(t *testing.T) {
	in := domain.Imperative{Step: domain.Step{
		Text:   "Press the button.",
		Action: domain.Optional("press"),
		Target: domain.Optional("button"),
	}}
	g := synth.Synthesize([]domain.Instruction{in})

	s1, _ := g.State("S1")
	assert.Equal(t, "Press the button.", s1.Description)
}

func TestParseStrategy(t *testing.T) {
	s, err := synth.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, synth.Linear, s)

	s, err = synth.ParseStrategy("branching")
	require.NoError(t, err)
	assert.Equal(t, synth.Branching, s)

	_, err = synth.ParseStrategy("tree")
	assert.Error(t, err)
}

func TestNew_DefaultsToLinear(t *testing.T) {
	sy := synth.New()
	assert.Equal(t, synth.Linear, sy.Strategy())

	in := []domain.Instruction{imperative(0, "a"), alternative(1, "b")}
	assert.Equal(t, edges(synth.Synthesize(in)), edges(sy.Synthesize(in)))
}
