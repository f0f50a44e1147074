package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/me/cpusched/pkg/model"
)

func finished(pid, creation, end, waiting, changes int) *model.Process {
	p := model.NewProcess(pid, model.Descriptor{CreationTime: creation, Duration: 1})
	p.State = model.ProcessStateDone
	p.End = end
	p.WaitingTime = waiting
	p.ContextChanges = changes
	return p
}

func TestCompute(t *testing.T) {
	procs := []*model.Process{
		finished(1, 0, 3, 0, 1),
		finished(2, 0, 5, 3, 1),
		finished(3, 0, 9, 5, 2),
	}
	s := Compute(procs, 9)

	assert.Equal(t, []ProcessStats{
		{PID: 1, Turnaround: 3, Waiting: 0, ContextChanges: 1},
		{PID: 2, Turnaround: 5, Waiting: 3, ContextChanges: 1},
		{PID: 3, Turnaround: 9, Waiting: 5, ContextChanges: 2},
	}, s.Processes)
	assert.InDelta(t, 17.0/3, s.AverageTurnaround, 1e-9)
	assert.InDelta(t, 8.0/3, s.AverageWaiting, 1e-9)
	assert.Equal(t, 4, s.TotalContextChanges)
	assert.Equal(t, 9, s.Makespan)
	assert.Equal(t, 0, s.IdleTicks)
	assert.InDelta(t, 3.0/9, s.Throughput, 1e-9)
}

func TestCompute_IdleGap(t *testing.T) {
	procs := []*model.Process{
		finished(1, 0, 2, 0, 1),
		finished(2, 5, 7, 0, 1),
	}
	s := Compute(procs, 4)
	assert.Equal(t, 7, s.Makespan)
	assert.Equal(t, 3, s.IdleTicks)
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil, 0)
	assert.Empty(t, s.Processes)
	assert.Zero(t, s.AverageTurnaround)
	assert.Zero(t, s.AverageWaiting)
	assert.Zero(t, s.Throughput)
}
