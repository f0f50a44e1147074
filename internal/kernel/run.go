package kernel

import (
	"log/slog"

	"github.com/me/cpusched/internal/scheduler"
	"github.com/me/cpusched/pkg/model"
)

// run is the state of one simulation. Nothing in it outlives Kernel.Run.
type run struct {
	id          string
	admission   []model.Descriptor
	next        int
	now         int
	ledger      []*model.Process
	sched       scheduler.Scheduler
	cpu         CPU
	schedule    []ScheduleRow
	busy        int
	preemptions int
	logger      *slog.Logger
}

// admitting reports whether descriptors remain to be admitted.
func (r *run) admitting() bool {
	return r.next < len(r.admission)
}

// tick advances the simulation by one tick and returns the pid that ran, or 0.
// Admission, preemption and execution happen in that order.
func (r *run) tick() (int, error) {
	// Phase 1: admit processes created this tick.
	if err := r.admit(); err != nil {
		return 0, err
	}

	// Phase 2: let the scheduler preempt before any work is done.
	prev := r.sched.CurrentPID()
	preempted, err := r.sched.HasPreemption(r.now)
	if err != nil {
		return 0, err
	}
	if preempted {
		r.preemptions++
		r.cpu.Preempt(prev, r.sched.CurrentPID())
	}

	// Phase 3: run one tick of work.
	pid, err := r.sched.Run(r.now)
	if err != nil {
		return 0, err
	}
	if pid != 0 {
		r.busy++
		r.cpu.Execute(pid)
		r.schedule = append(r.schedule, r.snapshot(pid))
	}
	return pid, nil
}

// snapshot records what every admitted process did during this tick.
func (r *run) snapshot(pid int) ScheduleRow {
	slots := make([]Slot, len(r.ledger))
	for i, p := range r.ledger {
		switch {
		case p.PID == pid:
			slots[i] = SlotRunning
		case p.State == model.ProcessStateReady:
			slots[i] = SlotWaiting
		case p.State == model.ProcessStateRunning:
			slots[i] = SlotRunning
		default:
			slots[i] = SlotIdle
		}
	}
	return ScheduleRow{Tick: r.now, PID: pid, Slots: slots}
}

// finish pads every row to the final ledger size.
func (r *run) finish() {
	for i := range r.schedule {
		for len(r.schedule[i].Slots) < len(r.ledger) {
			r.schedule[i].Slots = append(r.schedule[i].Slots, SlotIdle)
		}
	}
}

func (r *run) admit() error {
	var fresh []*model.Process
	for r.admitting() && r.admission[r.next].CreationTime <= r.now {
		p := model.NewProcess(len(r.ledger)+1, r.admission[r.next])
		r.next++
		r.ledger = append(r.ledger, p)
		if p.Duration == 0 {
			if err := p.Retire(r.now); err != nil {
				return err
			}
			r.logger.Debug("process retired", "tick", r.now, "pid", p.PID)
			continue
		}
		fresh = append(fresh, p)
	}
	if len(fresh) == 0 {
		return nil
	}
	r.logger.Debug("admitted", "tick", r.now, "count", len(fresh))
	return r.sched.Feed(fresh, r.now)
}
