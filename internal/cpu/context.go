// Package cpu keeps the simulated register contents of each process. Its
// values never influence scheduling.
package cpu

// NumRegisters is the size of the general register file. Register 0 holds the
// pid of the process the registers belong to.
const NumRegisters = 6

// Context is a saved register snapshot.
type Context struct {
	Registers [NumRegisters]uint64 `json:"registers"`
	SP        uint64               `json:"sp"`
	PC        uint64               `json:"pc"`
	ST        uint64               `json:"st"`
}

// Memory stores the saved context of every process that has been switched out.
type Memory struct {
	contexts map[int]Context
}

// NewMemory creates an empty context store.
func NewMemory() *Memory {
	return &Memory{contexts: make(map[int]Context)}
}

// Save stores ctx for pid, replacing any earlier snapshot.
func (m *Memory) Save(pid int, ctx Context) {
	m.contexts[pid] = ctx
}

// Load returns the saved context for pid. A process that was never saved gets
// an empty context.
func (m *Memory) Load(pid int) Context {
	return m.contexts[pid]
}

// Len returns the number of saved contexts.
func (m *Memory) Len() int {
	return len(m.contexts)
}
