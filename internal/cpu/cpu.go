package cpu

import (
	"log/slog"
	"math/rand/v2"
)

// maxRandom bounds the random register fill.
const maxRandom = 101

// CPU simulates the single processor's register file.
type CPU struct {
	memory   *Memory
	current  Context
	rng      *rand.Rand
	switches int
	logger   *slog.Logger
}

// New creates a CPU whose register fill is derived from seed.
func New(seed uint64, logger *slog.Logger) *CPU {
	return &CPU{
		memory: NewMemory(),
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		logger: logger.With("component", "cpu"),
	}
}

// Execute simulates pid running for one tick. A pid new to the processor has
// its saved context loaded first.
func (c *CPU) Execute(pid int) {
	if uint64(pid) != c.current.Registers[0] {
		c.load(pid)
		c.current.Registers[0] = uint64(pid)
	}
	for i := 1; i < NumRegisters; i++ {
		c.current.Registers[i] = c.rng.Uint64N(maxRandom)
	}
	c.current.SP = c.rng.Uint64N(maxRandom)
	c.current.PC = c.rng.Uint64N(maxRandom)
	c.current.ST = c.rng.Uint64N(maxRandom)
	c.logger.Debug("cpu state", "pid", pid, "registers", c.current.Registers[1:], "sp", c.current.SP, "pc", c.current.PC, "st", c.current.ST)
}

// Preempt saves the context of the preempted process and loads the context of
// the scheduled one.
func (c *CPU) Preempt(preempted, scheduled int) {
	c.logger.Debug("preemption", "preempted", preempted, "scheduled", scheduled, "pc", c.current.PC)
	c.memory.Save(preempted, c.current)
	c.load(scheduled)
	c.current.Registers[0] = uint64(scheduled)
	c.switches++
}

// Snapshot returns the live register contents.
func (c *CPU) Snapshot() Context {
	return c.current
}

// Saved returns the stored context of pid.
func (c *CPU) Saved(pid int) Context {
	return c.memory.Load(pid)
}

// Switches returns the number of preemptions handled.
func (c *CPU) Switches() int {
	return c.switches
}

func (c *CPU) load(pid int) {
	c.current = c.memory.Load(pid)
}
