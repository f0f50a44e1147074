package queue

import "github.com/me/cpusched/pkg/model"

// FIFO serves processes in the order they were pushed.
type FIFO struct {
	items []*model.Process
}

// NewFIFO creates an empty FIFO queue.
func NewFIFO() *FIFO {
	return &FIFO{}
}

func (q *FIFO) Push(p *model.Process) {
	q.items = append(q.items, p)
}

func (q *FIFO) Front() (*model.Process, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	return q.items[0], true
}

func (q *FIFO) Pop() (*model.Process, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	p := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return p, true
}

func (q *FIFO) Empty() bool { return len(q.items) == 0 }

func (q *FIFO) Size() int { return len(q.items) }
