/*
Package domain contains the core data model of the manual compiler.

It defines the finite state machine produced from a technical manual: States,
guarded Transitions and the Graph that owns them, together with the Instruction
records handed over by an annotator. This package is kept pure and free of
external dependencies like I/O or persistence.

# Key Entities

  - State: a discrete step of the procedure, or the START/END markers.
  - Transition: a directed edge, optionally guarded by a condition.
  - Graph: the FSM container. States keep their insertion order and transitions
    keep their append order, so serialization is deterministic.
  - Snapshot: the stable serialized shape consumed by renderers and stores.
  - Instruction: a tagged variant (Imperative, Conditional, Alternative) describing
    one annotated step of the manual.
*/
package domain
