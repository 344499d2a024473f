package dsl

import (
	"testing"

	"github.com/aretw0/manualfsm/pkg/domain"
)

func TestBuilder_SimpleFlow(t *testing.T) {
	b := New()

	b.Start("START").
		Describe("Start").
		Go("check")

	b.State("check").
		Describe("Check the gauge.").
		Branch("if the pressure is high", "vent").
		Go("END")

	b.State("vent").
		Do("open", "END")

	b.State("END").
		Terminal()

	g := b.Build()

	if g.StartStateID() != "START" {
		t.Errorf("Expected start 'START', got '%s'", g.StartStateID())
	}

	states := g.States()
	wantOrder := []string{"START", "check", "vent", "END"}
	if len(states) != len(wantOrder) {
		t.Fatalf("Expected %d states, got %d", len(wantOrder), len(states))
	}
	for i, id := range wantOrder {
		if states[i].ID != id {
			t.Errorf("state[%d] = %s, want %s", i, states[i].ID, id)
		}
	}

	ts := g.Transitions()
	if len(ts) != 4 {
		t.Fatalf("Expected 4 transitions, got %d", len(ts))
	}
	if ts[1].SourceID != "check" || domain.Deref(ts[1].Condition) != "if the pressure is high" {
		t.Errorf("Unexpected branch transition: %+v", ts[1])
	}
	if ts[2].Guarded() {
		t.Errorf("Expected Go to be unconditional, got %+v", ts[2])
	}
	if domain.Deref(ts[3].Action) != "open" {
		t.Errorf("Expected action 'open', got %+v", ts[3])
	}

	end, _ := g.State("END")
	if !end.IsTerminal {
		t.Error("Expected END to be terminal")
	}
}

func TestBuilder_BuildIsolation(t *testing.T) {
	b := New()
	b.Start("A").Go("B")
	first := b.Build()

	b.State("B").Go("C")
	second := b.Build()

	if first.TransitionCount() != 1 {
		t.Errorf("first graph changed after Build: %d transitions", first.TransitionCount())
	}
	if second.TransitionCount() != 2 {
		t.Errorf("Expected 2 transitions, got %d", second.TransitionCount())
	}
	if first.HasState("C") {
		t.Error("first graph should not see states added later")
	}
}

func TestBuilder_ReusesStateBuilder(t *testing.T) {
	b := New()
	b.State("A").Describe("one")
	b.State("A").Terminal()

	s := b.State("A").Build()
	if s.Description != "one" || !s.IsTerminal {
		t.Errorf("Expected merged configuration, got %+v", s)
	}
}
