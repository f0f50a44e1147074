// Package idgen produces identifiers for simulation runs. NewFunc is a
// variable so tests can stub it.
package idgen

import "github.com/google/uuid"

var NewFunc = func() string { return uuid.New().String() }

// New returns a new globally unique identifier.
func New() string { return NewFunc() }

// RunID returns a short identifier for one simulation run.
func RunID() string {
	id := New()
	if len(id) > 8 {
		id = id[:8]
	}
	return "run_" + id
}
