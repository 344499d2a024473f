package manualfsm_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/manualfsm"
	"github.com/aretw0/manualfsm/pkg/domain"
)

// ExampleEngine_Compile turns a numbered manual into a graph with the default
// linear strategy.
func ExampleEngine_Compile() {
	eng, err := manualfsm.New()
	if err != nil {
		log.Fatal(err)
	}

	res, err := eng.Compile(context.Background(), "1. Open the valve.\n2. Wait for the tank to fill.\n3. Close the valve.\n")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("states=%d transitions=%d valid=%t\n", res.Stats.States, res.Stats.Transitions, res.Valid())
	// Output: states=5 transitions=4 valid=true
}

// ExampleEngine_Validate checks a graph that was not produced by the compiler.
func ExampleEngine_Validate() {
	eng, err := manualfsm.New()
	if err != nil {
		log.Fatal(err)
	}

	snap := domain.Snapshot{
		StartStateID: domain.Optional("START"),
		States: []domain.State{
			{ID: "START", Description: "Start", IsStart: true},
			{ID: "S1", Description: "Check the gauge."},
			{ID: "ORPHAN", Description: "Calibrate.", IsTerminal: true},
		},
		Transitions: []domain.Transition{
			{SourceID: "START", TargetID: "S1"},
		},
	}

	for _, d := range eng.Validate(snap) {
		fmt.Println(d.Message)
	}
	// Output:
	// Unreachable states found: {ORPHAN}
	// Dead end found at state: S1 (Check the gauge.). Expected transition or terminal.
}
