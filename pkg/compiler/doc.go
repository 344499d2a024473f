/*
Package compiler wires the manual-to-FSM pipeline:

	text -> segment -> annotate -> synthesize -> validate

Each call works on its own freshly synthesized Graph, so a single Compiler can
serve concurrent requests.

	c := compiler.New(compiler.WithStrategy(synth.Branching))
	res, err := c.Compile(ctx, manualText)
	if err != nil {
		// input was rejected (too large, invalid UTF-8)
	}
	for _, d := range res.Diagnostics {
		fmt.Println(d.Message)
	}
*/
package compiler
