package event

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Send after Close, and by Next once a closed
// queue is drained.
var ErrClosed = errors.New("event queue closed")

// Queue is an unbounded multi-producer, single-consumer FIFO. Send never
// blocks; Next blocks until an event is ready.
type Queue struct {
	mu     sync.Mutex
	items  []Event
	closed bool
	ready  chan struct{} // capacity 1, signals "items may be non-empty"
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{ready: make(chan struct{}, 1)}
}

// Send appends e. It fails only after Close.
func (q *Queue) Send(e Event) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.items = append(q.items, e)
	q.mu.Unlock()

	q.notify()
	return nil
}

// Next removes and returns the oldest event. It returns ctx.Err() if the
// context ends first, and ErrClosed once the queue is closed and empty.
func (q *Queue) Next(ctx context.Context) (Event, error) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			e := q.items[0]
			q.items[0] = Event{}
			q.items = q.items[1:]
			more := len(q.items) > 0
			q.mu.Unlock()
			if more {
				q.notify()
			}
			return e, nil
		}
		if q.closed {
			q.mu.Unlock()
			return Event{}, ErrClosed
		}
		q.mu.Unlock()

		select {
		case <-q.ready:
		case <-ctx.Done():
			return Event{}, ctx.Err()
		}
	}
}

// Close stops further sends. Events already queued are still delivered.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.notify()
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *Queue) notify() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}
