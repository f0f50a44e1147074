package scheduler

import (
	"log/slog"

	"github.com/me/cpusched/internal/queue"
	"github.com/me/cpusched/pkg/model"
)

// DefaultQuantum is the round-robin quantum used when none is configured.
const DefaultQuantum = 2

// Constructor builds a fresh Scheduler for one run.
type Constructor func(quantum int, logger *slog.Logger) Scheduler

// Registry maps disciplines to scheduler constructors.
// Registration happens at startup before concurrent access, so no mutex is needed.
type Registry struct {
	constructors map[model.Discipline]Constructor
	base         *slog.Logger
	logger       *slog.Logger
}

// NewRegistry creates an empty Registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		constructors: make(map[model.Discipline]Constructor),
		base:         logger,
		logger:       logger.With("component", "scheduler-registry"),
	}
}

// DefaultRegistry returns a Registry holding the five built-in disciplines.
func DefaultRegistry(logger *slog.Logger) *Registry {
	r := NewRegistry(logger)
	r.Register(model.DisciplineFCFS, func(_ int, l *slog.Logger) Scheduler {
		return NewPolicy(model.DisciplineFCFS, queue.NewFIFO(), Never, l)
	})
	r.Register(model.DisciplineSJF, func(_ int, l *slog.Logger) Scheduler {
		return NewPolicy(model.DisciplineSJF, queue.NewPriority(queue.ByDuration), Never, l)
	})
	r.Register(model.DisciplinePNP, func(_ int, l *slog.Logger) Scheduler {
		return NewPolicy(model.DisciplinePNP, queue.NewPriority(queue.ByPriority), Never, l)
	})
	r.Register(model.DisciplinePP, func(_ int, l *slog.Logger) Scheduler {
		return NewPolicy(model.DisciplinePP, queue.NewPriority(queue.ByPriority), BetterPriority, l)
	})
	r.Register(model.DisciplineRR, func(quantum int, l *slog.Logger) Scheduler {
		return NewPolicy(model.DisciplineRR, queue.NewFIFO(), QuantumExpired(quantum), l)
	})
	return r
}

// Register adds a constructor for a discipline.
func (r *Registry) Register(d model.Discipline, c Constructor) {
	r.constructors[d] = c
	r.logger.Debug("scheduler registered", "discipline", d.String())
}

// New builds a scheduler for d. Unknown disciplines fall back to FCFS and a
// quantum below 1 falls back to DefaultQuantum.
func (r *Registry) New(d model.Discipline, quantum int) Scheduler {
	c, ok := r.constructors[d]
	if !ok {
		r.logger.Warn("unknown discipline, using FCFS", "discipline", int(d))
		c, ok = r.constructors[model.DisciplineFCFS]
		if !ok {
			return NewPolicy(model.DisciplineFCFS, queue.NewFIFO(), Never, r.base)
		}
	}
	if quantum < 1 {
		quantum = DefaultQuantum
	}
	return c(quantum, r.base)
}

// New builds a scheduler from the built-in disciplines.
func New(d model.Discipline, quantum int, logger *slog.Logger) Scheduler {
	return DefaultRegistry(logger).New(d, quantum)
}
