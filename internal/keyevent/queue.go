package keyevent

// Capacity is the number of events a Queue holds.
const Capacity = 32

// Queue is a fixed-size FIFO of events. When full, Push discards the oldest
// entry. It is not safe for concurrent use.
type Queue struct {
	buf  [Capacity]Event
	head int
	n    int
}

// Push appends ev, reporting whether the oldest event was evicted for it.
func (q *Queue) Push(ev Event) (evicted bool) {
	if q.n == Capacity {
		q.head = (q.head + 1) % Capacity
		q.n--
		evicted = true
	}
	q.buf[(q.head+q.n)%Capacity] = ev
	q.n++
	return evicted
}

// Pop removes and returns the oldest event.
func (q *Queue) Pop() (Event, bool) {
	if q.n == 0 {
		return Event{}, false
	}
	ev := q.buf[q.head]
	q.head = (q.head + 1) % Capacity
	q.n--
	return ev, true
}

func (q *Queue) Len() int { return q.n }

func (q *Queue) Cap() int { return Capacity }
