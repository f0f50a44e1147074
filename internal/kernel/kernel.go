// Package kernel drives the simulated clock: it admits processes, consults
// the active scheduler and accounts for every tick of CPU time.
package kernel

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/me/cpusched/internal/cpu"
	"github.com/me/cpusched/internal/idgen"
	"github.com/me/cpusched/internal/scheduler"
	"github.com/me/cpusched/internal/stats"
	"github.com/me/cpusched/pkg/model"
)

// ErrTickLimit is returned when a run exceeds Options.MaxTicks.
var ErrTickLimit = errors.New("tick limit reached")

// CPU receives the context accounting side effects of a run.
type CPU interface {
	Execute(pid int)
	Preempt(preempted, scheduled int)
}

// Options selects the discipline of one run.
type Options struct {
	Discipline model.Discipline
	Quantum    int // round-robin only; values below 1 use scheduler.DefaultQuantum
	MaxTicks   int // 0 means unbounded
}

// Result is everything a finished run produced.
type Result struct {
	RunID       string           `json:"run_id" yaml:"run_id"`
	Discipline  model.Discipline `json:"discipline" yaml:"discipline"`
	Quantum     int              `json:"quantum,omitempty" yaml:"quantum,omitempty"`
	Ticks       int              `json:"ticks" yaml:"ticks"`
	Preemptions int              `json:"preemptions" yaml:"preemptions"`
	Processes   []*model.Process `json:"processes" yaml:"processes"`
	Schedule    []ScheduleRow    `json:"schedule" yaml:"schedule"`
	Stats       stats.Summary    `json:"stats" yaml:"stats"`
}

// Kernel runs simulations. It keeps no state between runs, so one Kernel can
// run every discipline over the same input.
type Kernel struct {
	registry *scheduler.Registry
	newCPU   func() CPU
	base     *slog.Logger
	logger   *slog.Logger
}

// Option configures optional Kernel dependencies.
type Option func(*Kernel)

// WithRegistry replaces the built-in scheduler registry.
func WithRegistry(reg *scheduler.Registry) Option {
	return func(k *Kernel) {
		k.registry = reg
	}
}

// WithCPU sets the factory for the per-run CPU collaborator.
func WithCPU(newCPU func() CPU) Option {
	return func(k *Kernel) {
		k.newCPU = newCPU
	}
}

// WithSeed makes the simulated register fill reproducible.
func WithSeed(seed uint64) Option {
	return func(k *Kernel) {
		base := k.base
		k.newCPU = func() CPU { return cpu.New(seed, base) }
	}
}

// New creates a Kernel.
func New(logger *slog.Logger, opts ...Option) *Kernel {
	k := &Kernel{
		registry: scheduler.DefaultRegistry(logger),
		base:     logger,
		logger:   logger.With("component", "kernel"),
	}
	k.newCPU = func() CPU { return cpu.New(0, logger) }
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Run simulates descs under one discipline until every process is done and
// none remain to be admitted.
func (k *Kernel) Run(descs []model.Descriptor, opts Options) (*Result, error) {
	quantum := opts.Quantum
	if quantum < 1 {
		quantum = scheduler.DefaultQuantum
	}
	sched := k.registry.New(opts.Discipline, quantum)
	r := &run{
		id:        idgen.RunID(),
		admission: model.SortForAdmission(descs),
		sched:     sched,
		cpu:       k.newCPU(),
	}
	logger := k.logger.With("run_id", r.id, "discipline", sched.Discipline().String())
	r.logger = logger
	logger.Info("run started", "processes", len(descs), "quantum", quantum)

	for {
		if opts.MaxTicks > 0 && r.now >= opts.MaxTicks {
			logger.Warn("run aborted", "ticks", r.now, "pending", sched.Pending())
			return nil, fmt.Errorf("run %s: %w after %d ticks", r.id, ErrTickLimit, r.now)
		}
		pid, err := r.tick()
		if err != nil {
			return nil, fmt.Errorf("run %s tick %d: %w", r.id, r.now, err)
		}
		r.now++
		if pid == 0 && !r.admitting() {
			break
		}
	}

	r.finish()
	res := &Result{
		RunID:       r.id,
		Discipline:  sched.Discipline(),
		Ticks:       r.now,
		Preemptions: r.preemptions,
		Processes:   r.ledger,
		Schedule:    r.schedule,
		Stats:       stats.Compute(r.ledger, r.busy),
	}
	if res.Discipline == model.DisciplineRR {
		res.Quantum = quantum
	}
	logger.Info("run finished",
		"ticks", res.Ticks,
		"busy", res.Stats.BusyTicks,
		"preemptions", res.Preemptions,
		"avg_turnaround", res.Stats.AverageTurnaround,
		"avg_waiting", res.Stats.AverageWaiting,
	)
	return res, nil
}

// RunAll runs every discipline in order over the same input. Each run starts
// from a fresh copy of the descriptors.
func (k *Kernel) RunAll(descs []model.Descriptor, quantum, maxTicks int) ([]*Result, error) {
	var results []*Result
	for _, d := range model.AllDisciplines() {
		res, err := k.Run(descs, Options{Discipline: d, Quantum: quantum, MaxTicks: maxTicks})
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
