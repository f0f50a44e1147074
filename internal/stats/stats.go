// Package stats aggregates per-process timing figures after a run.
package stats

import "github.com/me/cpusched/pkg/model"

// ProcessStats holds the figures reported for one process.
type ProcessStats struct {
	PID            int `json:"pid" yaml:"pid"`
	Turnaround     int `json:"turnaround" yaml:"turnaround"`
	Waiting        int `json:"waiting" yaml:"waiting"`
	ContextChanges int `json:"context_changes" yaml:"context_changes"`
}

// Summary is the statistics block of one run.
type Summary struct {
	Processes           []ProcessStats `json:"processes" yaml:"processes"`
	AverageTurnaround   float64        `json:"average_turnaround" yaml:"average_turnaround"`
	AverageWaiting      float64        `json:"average_waiting" yaml:"average_waiting"`
	TotalContextChanges int            `json:"total_context_changes" yaml:"total_context_changes"`
	Makespan            int            `json:"makespan" yaml:"makespan"`
	BusyTicks           int            `json:"busy_ticks" yaml:"busy_ticks"`
	IdleTicks           int            `json:"idle_ticks" yaml:"idle_ticks"`
	Throughput          float64        `json:"throughput" yaml:"throughput"`
}

// Compute builds a Summary from a finished process ledger. busyTicks is the
// number of ticks in which a process ran. Processes that are not done count
// with zero turnaround.
func Compute(procs []*model.Process, busyTicks int) Summary {
	s := Summary{
		Processes: make([]ProcessStats, 0, len(procs)),
		BusyTicks: busyTicks,
	}
	var sumTurnaround, sumWaiting int
	for _, p := range procs {
		tat, _ := p.Turnaround()
		s.Processes = append(s.Processes, ProcessStats{
			PID:            p.PID,
			Turnaround:     tat,
			Waiting:        p.WaitingTime,
			ContextChanges: p.ContextChanges,
		})
		sumTurnaround += tat
		sumWaiting += p.WaitingTime
		s.TotalContextChanges += p.ContextChanges
		if p.End > s.Makespan {
			s.Makespan = p.End
		}
	}
	if n := len(procs); n > 0 {
		s.AverageTurnaround = float64(sumTurnaround) / float64(n)
		s.AverageWaiting = float64(sumWaiting) / float64(n)
	}
	if s.Makespan > 0 {
		s.IdleTicks = s.Makespan - busyTicks
		s.Throughput = float64(len(procs)) / float64(s.Makespan)
	}
	return s
}
