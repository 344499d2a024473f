/*
Package dsl provides a fluent builder for constructing state graphs by hand.

Construction is staged in the builder and only materialized by Build, so a
half-built graph is never handed to a validator or renderer. This is
particularly useful for tests, fixtures and tooling that assembles FSMs
without going through the synthesizer.

Example usage:

	b := dsl.New()

	b.Start("START").
		Describe("Start").
		Go("check")

	b.State("check").
		Describe("Check the pressure gauge.").
		Branch("if the pressure is high", "vent").
		Go("END")

	b.State("vent").
		Describe("Open the relief valve.").
		Go("END")

	b.State("END").
		Describe("End").
		Terminal()

	g := b.Build()
*/
package dsl
