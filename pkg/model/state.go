package model

// ProcessState represents the lifecycle state of a simulated Process.
type ProcessState string

const (
	// ProcessStateNew is the state of a freshly constructed Process. The kernel
	// admits or retires every Process in the same tick it is created, so NEW is
	// never observed by schedulers or reports.
	ProcessStateNew     ProcessState = "NEW"
	ProcessStateReady   ProcessState = "READY"
	ProcessStateRunning ProcessState = "RUNNING"
	ProcessStateDone    ProcessState = "DONE"
)

// String returns the string representation of the process state.
func (s ProcessState) String() string {
	return string(s)
}

// IsTerminal returns true if the process is in a final state.
func (s ProcessState) IsTerminal() bool {
	return s == ProcessStateDone
}

// ValidProcessTransitions defines the allowed state transitions for Processes.
// NEW -> DONE is reserved for zero-duration processes that have nothing to run.
var ValidProcessTransitions = map[ProcessState][]ProcessState{
	ProcessStateNew:     {ProcessStateReady, ProcessStateDone},
	ProcessStateReady:   {ProcessStateRunning},
	ProcessStateRunning: {ProcessStateReady, ProcessStateDone},
}

// CanTransitionTo returns true if moving from the current state to next is valid.
func (s ProcessState) CanTransitionTo(next ProcessState) bool {
	for _, allowed := range ValidProcessTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
