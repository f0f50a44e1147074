package kernel

import "fmt"

// Slot is what one process was doing during one executed tick.
type Slot uint8

const (
	// SlotIdle covers processes that are done or not yet admitted.
	SlotIdle Slot = iota
	SlotWaiting
	SlotRunning
)

// String returns the two-character mnemonic used in the Gantt table.
func (s Slot) String() string {
	switch s {
	case SlotIdle:
		return "  "
	case SlotWaiting:
		return "--"
	case SlotRunning:
		return "##"
	}
	return fmt.Sprintf("Slot(%d)", uint8(s))
}

// MarshalText encodes the slot by its mnemonic.
func (s Slot) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a mnemonic produced by MarshalText.
func (s *Slot) UnmarshalText(text []byte) error {
	for _, c := range []Slot{SlotIdle, SlotWaiting, SlotRunning} {
		if string(text) == c.String() {
			*s = c
			return nil
		}
	}
	return fmt.Errorf("unknown slot %q", text)
}

// ScheduleRow records one tick in which a process ran. Slots has one entry per
// process known at the end of the run, indexed by pid-1; processes admitted
// after the tick are SlotIdle.
type ScheduleRow struct {
	Tick  int    `json:"tick" yaml:"tick"`
	PID   int    `json:"pid" yaml:"pid"`
	Slots []Slot `json:"slots" yaml:"slots"`
}
