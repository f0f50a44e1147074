package model

import "fmt"

// Unset marks Start and End before they are known.
const Unset = -1

// Process is one simulated process. The kernel's ledger owns every Process for
// the length of a run; queues and schedulers only hold references into it.
type Process struct {
	PID          int `json:"pid" yaml:"pid"`
	CreationTime int `json:"creation_time" yaml:"creation_time"`
	Duration     int `json:"duration" yaml:"duration"`
	Priority     int `json:"priority" yaml:"priority"`

	State              ProcessState `json:"state" yaml:"state"`
	TotalExecutionTime int          `json:"total_execution_time" yaml:"total_execution_time"`
	Start              int          `json:"start" yaml:"start"`
	End                int          `json:"end" yaml:"end"`
	WaitingTime        int          `json:"waiting_time" yaml:"waiting_time"`
	LastReadyAt        int          `json:"-" yaml:"-"`
	ContextChanges     int          `json:"context_changes" yaml:"context_changes"`
}

// NewProcess creates a NEW process from a descriptor.
func NewProcess(pid int, d Descriptor) *Process {
	return &Process{
		PID:          pid,
		CreationTime: d.CreationTime,
		Duration:     d.Duration,
		Priority:     d.Priority,
		State:        ProcessStateNew,
		Start:        Unset,
		End:          Unset,
		LastReadyAt:  Unset,
	}
}

// IsDone reports whether the process has reached its terminal state.
func (p *Process) IsDone() bool {
	return p.State.IsTerminal()
}

// Remaining returns the ticks of CPU the process still needs.
func (p *Process) Remaining() int {
	return p.Duration - p.TotalExecutionTime
}

// Turnaround returns End - CreationTime. ok is false until the process is done.
func (p *Process) Turnaround() (int, bool) {
	if !p.IsDone() {
		return 0, false
	}
	return p.End - p.CreationTime, true
}

// Admit moves a NEW process to READY at tick now.
func (p *Process) Admit(now int) error {
	if err := p.transition(ProcessStateReady); err != nil {
		return err
	}
	p.LastReadyAt = now
	return nil
}

// Retire completes a zero-duration process without ever scheduling it.
func (p *Process) Retire(now int) error {
	if p.Duration != 0 {
		return fmt.Errorf("retire pid %d: duration %d is not zero", p.PID, p.Duration)
	}
	if err := p.transition(ProcessStateDone); err != nil {
		return err
	}
	p.Start = now
	p.End = now
	return nil
}

// Dispatch moves a READY process onto the CPU at tick now, charging the ticks
// it spent waiting since it last became ready.
func (p *Process) Dispatch(now int) error {
	if err := p.transition(ProcessStateRunning); err != nil {
		return err
	}
	if p.Start == Unset || now < p.Start {
		p.Start = now
	}
	p.WaitingTime += now - p.LastReadyAt
	p.ContextChanges++
	return nil
}

// Preempt returns a RUNNING process to READY at tick now.
func (p *Process) Preempt(now int) error {
	if err := p.transition(ProcessStateReady); err != nil {
		return err
	}
	p.LastReadyAt = now
	return nil
}

// Run executes one tick of work during tick now. When the last required tick
// completes the process becomes DONE with End set to the end of that tick.
func (p *Process) Run(now int) error {
	if p.State != ProcessStateRunning {
		return fmt.Errorf("run pid %d: %w", p.PID, &InvalidTransitionError{PID: p.PID, From: p.State, To: ProcessStateRunning})
	}
	p.TotalExecutionTime++
	if p.TotalExecutionTime >= p.Duration {
		if err := p.transition(ProcessStateDone); err != nil {
			return err
		}
		p.End = now + 1
	}
	return nil
}

func (p *Process) transition(next ProcessState) error {
	if !p.State.CanTransitionTo(next) {
		return &InvalidTransitionError{PID: p.PID, From: p.State, To: next}
	}
	p.State = next
	return nil
}
