package domain

import "errors"

// ErrSnapshotNotFound is returned when a graph id cannot be found in a store.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// ErrManualNotFound is returned when a manual id cannot be found in a library.
var ErrManualNotFound = errors.New("manual not found")
