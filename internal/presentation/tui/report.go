package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/manualfsm/pkg/compiler"
	"github.com/aretw0/manualfsm/pkg/domain"
)

// Report renders a compilation result as markdown: steps, statistics and
// the validation outcome.
func Report(res *compiler.Result) string {
	var b strings.Builder

	b.WriteString("# Compilation report\n\n")
	fmt.Fprintf(&b, "Graph `%s` (strategy: %s)\n\n", res.ID, res.Strategy)

	b.WriteString("## Steps\n\n")
	if len(res.Steps) == 0 {
		b.WriteString("_No steps found._\n\n")
	}
	for i, step := range res.Steps {
		var kind domain.Kind
		if i < len(res.Instructions) {
			kind = res.Instructions[i].Kind
		}
		fmt.Fprintf(&b, "%d. %s", i+1, step)
		if kind != "" && kind != domain.KindImperative {
			fmt.Fprintf(&b, " _(%s)_", kind)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("## Statistics\n\n")
	fmt.Fprintf(&b, "- States: %d\n- Transitions: %d\n\n", res.Stats.States, res.Stats.Transitions)

	b.WriteString("## Validation\n\n")
	if res.Valid() {
		b.WriteString("Valid: no structural defects found.\n")
		return b.String()
	}
	for _, msg := range res.Messages() {
		fmt.Fprintf(&b, "- %s\n", msg)
	}
	return b.String()
}

// Printer writes reports to a stream, styling them when it is a terminal.
type Printer struct {
	out    io.Writer
	styled bool
	render func(string) (string, error)
}

// NewPrinter builds a Printer for out. Styling is enabled only on a TTY.
func NewPrinter(out io.Writer) *Printer {
	p := &Printer{out: out, styled: IsTerminal(out)}
	if p.styled {
		p.render = NewRenderer()
	}
	return p
}

// Markdown prints md, rendered through glamour when styled.
func (p *Printer) Markdown(md string) error {
	if p.styled {
		rendered, err := p.render(md)
		if err == nil {
			md = rendered
		}
	}
	_, err := io.WriteString(p.out, md)
	return err
}

// Status prints a one-line outcome, green for ok and red otherwise.
func (p *Printer) Status(ok bool, msg string) {
	if !p.styled {
		fmt.Fprintln(p.out, msg)
		return
	}
	profile := termenv.ColorProfile()
	color := "#22c55e"
	if !ok {
		color = "#ef4444"
	}
	fmt.Fprintln(p.out, termenv.String(msg).Foreground(profile.Color(color)).Bold())
}
