package scheduler

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/me/cpusched/pkg/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func procs(descs ...model.Descriptor) []*model.Process {
	out := make([]*model.Process, len(descs))
	for i, d := range descs {
		out[i] = model.NewProcess(i+1, d)
	}
	return out
}

// tick runs one preemption check and one unit of work, as the kernel does.
func tick(t *testing.T, s Scheduler, now int) (pid int, preempted bool) {
	t.Helper()
	preempted, err := s.HasPreemption(now)
	require.NoError(t, err)
	pid, err = s.Run(now)
	require.NoError(t, err)
	return pid, preempted
}

func TestPolicy_IdleWhenEmpty(t *testing.T) {
	for _, d := range model.AllDisciplines() {
		s := New(d, 2, testLogger())
		pid, preempted := tick(t, s, 0)
		assert.Equal(t, 0, pid, d.String())
		assert.False(t, preempted, d.String())
		assert.Equal(t, 0, s.CurrentPID(), d.String())
	}
}

func TestPolicy_FCFSRunsToCompletion(t *testing.T) {
	s := New(model.DisciplineFCFS, 2, testLogger())
	ps := procs(
		model.Descriptor{Duration: 3},
		model.Descriptor{Duration: 2},
	)
	require.NoError(t, s.Feed(ps, 0))
	assert.Equal(t, 2, s.Pending())

	var ran []int
	for now := 0; now < 5; now++ {
		pid, preempted := tick(t, s, now)
		assert.False(t, preempted)
		ran = append(ran, pid)
	}
	assert.Equal(t, []int{1, 1, 1, 2, 2}, ran)
	pid, _ := tick(t, s, 5)
	assert.Equal(t, 0, pid)

	for _, p := range ps {
		assert.True(t, p.IsDone())
		assert.Equal(t, 1, p.ContextChanges)
	}
	assert.Equal(t, 3, ps[1].WaitingTime)
}

func TestPolicy_SJFDoesNotPreemptForShorterArrival(t *testing.T) {
	s := New(model.DisciplineSJF, 2, testLogger())
	ps := procs(
		model.Descriptor{Duration: 4},
		model.Descriptor{CreationTime: 1, Duration: 1},
	)
	require.NoError(t, s.Feed(ps[:1], 0))
	pid, _ := tick(t, s, 0)
	assert.Equal(t, 1, pid)

	require.NoError(t, s.Feed(ps[1:], 1))
	for now := 1; now < 4; now++ {
		pid, preempted := tick(t, s, now)
		assert.False(t, preempted)
		assert.Equal(t, 1, pid)
	}
	pid, _ = tick(t, s, 4)
	assert.Equal(t, 2, pid)
}

func TestPolicy_PPPreemptsOnStrictlyBetterPriority(t *testing.T) {
	s := New(model.DisciplinePP, 2, testLogger())
	ps := procs(
		model.Descriptor{Duration: 4, Priority: 2},
		model.Descriptor{CreationTime: 1, Duration: 2, Priority: 2},
		model.Descriptor{CreationTime: 2, Duration: 1, Priority: 1},
	)
	require.NoError(t, s.Feed(ps[:1], 0))
	pid, _ := tick(t, s, 0)
	assert.Equal(t, 1, pid)

	// Equal priority waiting: no preemption.
	require.NoError(t, s.Feed(ps[1:2], 1))
	pid, preempted := tick(t, s, 1)
	assert.False(t, preempted)
	assert.Equal(t, 1, pid)

	// Strictly better priority: P3 takes the CPU before this tick's work.
	require.NoError(t, s.Feed(ps[2:], 2))
	pid, preempted = tick(t, s, 2)
	assert.True(t, preempted)
	assert.Equal(t, 3, pid)
	assert.Equal(t, model.ProcessStateReady, ps[0].State)
	assert.Equal(t, 2, ps[0].LastReadyAt)

	// P1 and P2 tie on priority; P2 was queued first.
	pid, _ = tick(t, s, 3)
	assert.Equal(t, 2, pid)
	assert.Equal(t, 2, ps[1].WaitingTime)

	pid, _ = tick(t, s, 4)
	assert.Equal(t, 2, pid)
	pid, _ = tick(t, s, 5)
	assert.Equal(t, 1, pid)
	assert.Equal(t, 2, ps[0].ContextChanges)
	assert.Equal(t, 3, ps[0].WaitingTime)
}

func TestPolicy_RRQuantum(t *testing.T) {
	s := New(model.DisciplineRR, 2, testLogger())
	ps := procs(
		model.Descriptor{Duration: 4},
		model.Descriptor{CreationTime: 2, Duration: 4},
	)
	require.NoError(t, s.Feed(ps[:1], 0))

	var ran []int
	var preemptions []int
	for now := 0; now < 8; now++ {
		if now == 2 {
			require.NoError(t, s.Feed(ps[1:], now))
		}
		pid, preempted := tick(t, s, now)
		ran = append(ran, pid)
		if preempted {
			preemptions = append(preemptions, now)
		}
	}
	assert.Equal(t, []int{1, 1, 2, 2, 1, 1, 2, 2}, ran)
	assert.Equal(t, []int{2, 4}, preemptions)
	assert.Equal(t, 6, ps[0].End)
	assert.Equal(t, 8, ps[1].End)
	assert.Equal(t, 2, ps[0].ContextChanges)
	assert.Equal(t, 2, ps[1].ContextChanges)
}

func TestPolicy_RRSingleProcessNeverPreempted(t *testing.T) {
	s := New(model.DisciplineRR, 2, testLogger())
	ps := procs(model.Descriptor{Duration: 6})
	require.NoError(t, s.Feed(ps, 0))
	for now := 0; now < 6; now++ {
		pid, preempted := tick(t, s, now)
		assert.False(t, preempted)
		assert.Equal(t, 1, pid)
	}
	assert.Equal(t, 1, ps[0].ContextChanges)
}

func TestPolicy_NoPreemptionWhenCurrentDone(t *testing.T) {
	s := New(model.DisciplineRR, 1, testLogger())
	ps := procs(
		model.Descriptor{Duration: 1},
		model.Descriptor{Duration: 1},
	)
	require.NoError(t, s.Feed(ps, 0))
	pid, _ := tick(t, s, 0)
	assert.Equal(t, 1, pid)

	preempted, err := s.HasPreemption(1)
	require.NoError(t, err)
	assert.False(t, preempted)
	assert.Equal(t, model.ProcessStateReady, ps[1].State)
	assert.Equal(t, 0, ps[1].ContextChanges)
}

func TestQuantumExpired(t *testing.T) {
	rule := QuantumExpired(3)
	p := model.NewProcess(1, model.Descriptor{Duration: 10})
	for exec, want := range map[int]bool{0: false, 1: false, 2: false, 3: true, 4: false, 6: true} {
		p.TotalExecutionTime = exec
		assert.Equal(t, want, rule(p, nil), "exec=%d", exec)
	}
}

func TestBetterPriority(t *testing.T) {
	cur := model.NewProcess(1, model.Descriptor{Priority: 2})
	assert.True(t, BetterPriority(cur, model.NewProcess(2, model.Descriptor{Priority: 1})))
	assert.False(t, BetterPriority(cur, model.NewProcess(3, model.Descriptor{Priority: 2})))
	assert.False(t, BetterPriority(cur, model.NewProcess(4, model.Descriptor{Priority: 3})))
}
