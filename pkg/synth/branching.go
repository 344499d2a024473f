package synth

import (
	"strconv"

	"github.com/aretw0/manualfsm/pkg/domain"
)

const otherwise = "otherwise"

// frame is an open conditional context.
type frame struct {
	// anchor is the decision state the conditional branched from.
	anchor string
}

type branchBuilder struct {
	g      *domain.Graph
	cursor string
	frames []frame
	joins  int
}

func synthesizeBranching(instructions []domain.Instruction) *domain.Graph {
	b := &branchBuilder{
		g:      domain.NewGraph(),
		cursor: domain.StartStateID,
	}
	b.g.AddState(domain.State{ID: domain.StartStateID, Description: startDescription, IsStart: true})

	for i, in := range instructions {
		id := StateID(i)
		step := in.Base()
		if _, ok := in.(domain.Imperative); ok {
			// A plain step ends every open conditional context.
			b.closeAll()
		}
		b.g.AddState(domain.State{ID: id, Description: step.Text})

		switch in.(type) {
		case domain.Conditional:
			b.link(b.cursor, id, step.Condition)
			b.frames = append(b.frames, frame{anchor: b.cursor})
			b.cursor = id
		case domain.Alternative:
			if len(b.frames) == 0 {
				// Nothing to pair with: chain it like the linear strategy.
				b.link(b.cursor, id, step.Condition)
				b.cursor = id
				continue
			}
			top := b.pop()
			cond := step.Condition
			if cond == nil {
				cond = domain.Optional(otherwise)
			}
			b.link(top.anchor, id, cond)
			join := b.join()
			b.link(b.cursor, join, nil)
			b.link(id, join, nil)
			b.cursor = join
		default:
			b.link(b.cursor, id, step.Condition)
			b.cursor = id
		}
	}

	b.closeAll()
	b.g.AddState(domain.State{ID: domain.EndStateID, Description: endDescription, IsTerminal: true})
	b.link(b.cursor, domain.EndStateID, nil)
	return b.g
}

func (b *branchBuilder) link(from, to string, cond *string) {
	b.g.AddTransition(domain.Transition{SourceID: from, TargetID: to, Condition: cond})
}

func (b *branchBuilder) pop() frame {
	top := b.frames[len(b.frames)-1]
	b.frames = b.frames[:len(b.frames)-1]
	return top
}

// join allocates a synthetic join state.
func (b *branchBuilder) join() string {
	b.joins++
	id := "J" + strconv.Itoa(b.joins)
	b.g.AddState(domain.State{ID: id, Description: joinDescription})
	return id
}

// closeAll closes every open conditional without an alternative. The anchor's
// default path skips the guarded arm and meets it at the join.
func (b *branchBuilder) closeAll() {
	for len(b.frames) > 0 {
		top := b.pop()
		join := b.join()
		b.link(b.cursor, join, nil)
		b.link(top.anchor, join, nil)
		b.cursor = join
	}
}
