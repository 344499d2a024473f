/*
Package synth turns an ordered sequence of annotated instructions into a Graph.

The default Linear strategy chains every instruction one after another: each
instruction becomes exactly one state with one incoming and one outgoing edge,
and a conditional's condition guards the edge leading into its state. An
"otherwise" instruction is chained after its predecessor like any other step.
This is an approximation, kept for output compatibility.

The Branching strategy models the decision explicitly. A conditional opens a
frame anchored at the state before it, an "otherwise" attaches to that anchor
as a sibling edge, and the arms meet again in a synthetic join state:

	START -> S1 -[if red]-> S2 -> J1 -> S4 -> END
	          \--[otherwise]-> S3 --/
*/
package synth
