/*
Package ports defines the driven ports (interfaces) of the manual compiler.

These interfaces decouple the pipeline from external implementations, allowing
compiled graphs to be persisted in various backends and manuals to be read from
different libraries.

# Key Interfaces

  - SnapshotStore: persists compiled graph snapshots by graph id.
  - ManualSource: reads raw manuals (e.g., from a Loam repository).
*/
package ports
