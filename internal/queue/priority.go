package queue

import (
	"container/heap"

	"github.com/me/cpusched/pkg/model"
)

// Priority serves processes in the order given by a Less function. Processes
// that compare equal are served in push order.
type Priority struct {
	h *entries
}

type entry struct {
	proc *model.Process
	seq  uint64
}

type entries struct {
	less  Less
	items []entry
	next  uint64
}

func (e *entries) Len() int { return len(e.items) }

func (e *entries) Less(i, j int) bool {
	a, b := e.items[i], e.items[j]
	if e.less(a.proc, b.proc) {
		return true
	}
	if e.less(b.proc, a.proc) {
		return false
	}
	return a.seq < b.seq
}

func (e *entries) Swap(i, j int) { e.items[i], e.items[j] = e.items[j], e.items[i] }

func (e *entries) Push(x any) { e.items = append(e.items, x.(entry)) }

func (e *entries) Pop() any {
	n := len(e.items)
	last := e.items[n-1]
	e.items[n-1] = entry{}
	e.items = e.items[:n-1]
	return last
}

// NewPriority creates an empty priority queue ordered by less.
func NewPriority(less Less) *Priority {
	return &Priority{h: &entries{less: less}}
}

func (q *Priority) Push(p *model.Process) {
	heap.Push(q.h, entry{proc: p, seq: q.h.next})
	q.h.next++
}

func (q *Priority) Front() (*model.Process, bool) {
	if q.h.Len() == 0 {
		return nil, false
	}
	return q.h.items[0].proc, true
}

func (q *Priority) Pop() (*model.Process, bool) {
	if q.h.Len() == 0 {
		return nil, false
	}
	return heap.Pop(q.h).(entry).proc, true
}

func (q *Priority) Empty() bool { return q.h.Len() == 0 }

func (q *Priority) Size() int { return q.h.Len() }
