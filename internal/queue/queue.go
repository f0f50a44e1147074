// Package queue holds the ready queues schedulers pick processes from.
package queue

import "github.com/me/cpusched/pkg/model"

// ProcessQueue is an ordered collection of READY processes.
// Front and Pop report ok == false on an empty queue.
type ProcessQueue interface {
	// Push adds a process to the queue.
	Push(p *model.Process)

	// Front returns the next process without removing it.
	Front() (*model.Process, bool)

	// Pop removes and returns the next process.
	Pop() (*model.Process, bool)

	// Empty reports whether the queue holds no processes.
	Empty() bool

	// Size returns the number of queued processes.
	Size() int
}

// Less orders two processes for a priority queue.
type Less func(a, b *model.Process) bool

// ByDuration puts the shortest job first.
func ByDuration(a, b *model.Process) bool {
	return a.Duration < b.Duration
}

// ByPriority puts the smallest priority number first.
func ByPriority(a, b *model.Process) bool {
	return a.Priority < b.Priority
}
