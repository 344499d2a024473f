/*
Package manualfsm compiles technical manuals into finite-state machine graphs.

A manual is a list of natural-language steps. Each step is annotated as an
imperative, a conditional ("If the light is red, stop.") or the alternative arm
of a conditional ("Otherwise, proceed."), then synthesized into a directed graph
of states and guarded transitions and checked for structural defects.

# Pipeline

	text -> segment -> annotate -> synthesize -> validate -> render

The default synthesis strategy chains instructions linearly between a START and
an END state. The branching strategy fans conditionals out from a shared anchor
and rejoins them at synthetic join states.

# Usage

	eng, err := manualfsm.New()
	if err != nil {
		log.Fatal(err)
	}

	res, err := eng.Compile(ctx, "1. Approach the intersection.\n2. If the light is red, stop the car.")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Stats.States, res.Valid())

Compiled graphs can be persisted with any ports.SnapshotStore (memory, file or
redis) and manuals can be read from a Loam library of markdown documents.
*/
package manualfsm
