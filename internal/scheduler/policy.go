package scheduler

import (
	"fmt"
	"log/slog"

	"github.com/me/cpusched/internal/queue"
	"github.com/me/cpusched/pkg/model"
)

// PreemptFunc reports whether front should take the CPU from current.
// It is only consulted when current is running and the queue is non-empty.
type PreemptFunc func(current, front *model.Process) bool

// Never is the preemption rule of the non-preemptive disciplines.
func Never(_, _ *model.Process) bool { return false }

// BetterPriority preempts when a strictly smaller priority number is waiting.
func BetterPriority(current, front *model.Process) bool {
	return front.Priority < current.Priority
}

// QuantumExpired preempts a process every time its accumulated execution
// reaches a multiple of quantum. The check runs before the tick's work, so a
// process that has not executed yet is never preempted.
func QuantumExpired(quantum int) PreemptFunc {
	return func(current, _ *model.Process) bool {
		return current.TotalExecutionTime > 0 && current.TotalExecutionTime%quantum == 0
	}
}

// Policy is the Scheduler shared by every discipline.
type Policy struct {
	discipline model.Discipline
	queue      queue.ProcessQueue
	preempt    PreemptFunc
	current    *model.Process
	logger     *slog.Logger
}

// NewPolicy builds a scheduler from a ready queue and a preemption rule.
func NewPolicy(d model.Discipline, q queue.ProcessQueue, preempt PreemptFunc, logger *slog.Logger) *Policy {
	return &Policy{
		discipline: d,
		queue:      q,
		preempt:    preempt,
		logger:     logger.With("component", "scheduler", "discipline", d.String()),
	}
}

func (s *Policy) Discipline() model.Discipline { return s.discipline }

func (s *Policy) Pending() int { return s.queue.Size() }

func (s *Policy) CurrentPID() int {
	if s.current == nil {
		return 0
	}
	return s.current.PID
}

// Feed marks each process READY and queues it.
func (s *Policy) Feed(procs []*model.Process, now int) error {
	for _, p := range procs {
		if err := p.Admit(now); err != nil {
			return fmt.Errorf("feed: %w", err)
		}
		s.queue.Push(p)
		s.logger.Debug("process ready", "tick", now, "pid", p.PID, "queued", s.queue.Size())
	}
	return nil
}

// HasPreemption swaps the running process for the queue front when the
// discipline's rule fires.
func (s *Policy) HasPreemption(now int) (bool, error) {
	if s.current == nil || s.current.IsDone() {
		return false, nil
	}
	front, ok := s.queue.Front()
	if !ok {
		return false, nil
	}
	if !s.preempt(s.current, front) {
		return false, nil
	}

	preempted := s.current
	if err := preempted.Preempt(now); err != nil {
		return false, fmt.Errorf("preempt: %w", err)
	}
	s.queue.Push(preempted)
	s.current = nil
	if err := s.dispatch(now); err != nil {
		return false, err
	}
	s.logger.Debug("preemption", "tick", now, "preempted", preempted.PID, "scheduled", s.current.PID)
	return true, nil
}

// Run dispatches the queue front if the CPU is free, then runs the current
// process for one tick.
func (s *Policy) Run(now int) (int, error) {
	if s.current == nil || s.current.IsDone() {
		s.current = nil
		if s.queue.Empty() {
			return 0, nil
		}
		if err := s.dispatch(now); err != nil {
			return 0, err
		}
	}
	if err := s.current.Run(now); err != nil {
		return 0, err
	}
	if s.current.IsDone() {
		s.logger.Debug("process done", "tick", now, "pid", s.current.PID, "end", s.current.End)
	}
	return s.current.PID, nil
}

func (s *Policy) dispatch(now int) error {
	next, ok := s.queue.Pop()
	if !ok {
		return nil
	}
	if err := next.Dispatch(now); err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}
	s.current = next
	s.logger.Debug("dispatch", "tick", now, "pid", next.PID, "waiting", next.WaitingTime)
	return nil
}
