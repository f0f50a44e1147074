// Package scheduler implements the five scheduling disciplines as one
// strategy: a ready queue ordering plus a preemption rule.
package scheduler

import "github.com/me/cpusched/pkg/model"

// Scheduler decides which process occupies the CPU each tick.
type Scheduler interface {
	// Discipline returns the discipline this scheduler implements.
	Discipline() model.Discipline

	// Feed admits newly created processes in admission order.
	Feed(procs []*model.Process, now int) error

	// HasPreemption evaluates the preemption rule before this tick's work.
	// When the rule fires the running process goes back to the ready queue,
	// the next candidate is dispatched, and true is returned.
	HasPreemption(now int) (bool, error)

	// Run executes one tick. It returns the pid that ran, or 0 if the CPU
	// was idle.
	Run(now int) (int, error)

	// CurrentPID returns the pid in the CPU slot, or 0 if there is none.
	CurrentPID() int

	// Pending returns the number of processes waiting in the ready queue.
	Pending() int
}
