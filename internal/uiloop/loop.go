// Package uiloop serializes work onto the single goroutine that owns UI
// state. Background tasks post closures; the owner runs them in order.
package uiloop

import (
	"context"
	"sync"
	"time"
)

// Poster schedules fn to run on the UI goroutine.
type Poster interface {
	Post(fn func())
}

// Queue is an unbounded FIFO of pending closures. Post never blocks, so
// the UI goroutine may post to itself.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	closed  bool

	// ready holds a token while pending may be non-empty.
	ready chan struct{}
	done  chan struct{}
}

// NewQueue returns an empty queue with room for size closures before it
// grows.
func NewQueue(size int) *Queue {
	return &Queue{
		pending: make([]func(), 0, size),
		ready:   make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// Post appends fn to the queue. Closures posted after Close are dropped.
func (q *Queue) Post(fn func()) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
	q.signal()
}

func (q *Queue) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

func (q *Queue) pop() (func(), bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil, false
	}
	fn := q.pending[0]
	q.pending[0] = nil
	q.pending = q.pending[1:]
	if len(q.pending) > 0 {
		q.signal()
	}
	return fn, true
}

// Len reports how many closures are waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Close drops the pending closures and wakes every waiter. It is safe to
// call more than once.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.pending = nil
	close(q.done)
}

// Next blocks until a closure is queued and returns it. ok is false once
// the queue is closed.
func (q *Queue) Next() (fn func(), ok bool) {
	for {
		if fn, ok := q.pop(); ok {
			return fn, true
		}
		select {
		case <-q.ready:
		case <-q.done:
			return nil, false
		}
	}
}

// Drain runs every closure already queued and reports how many ran.
// Closures posted by those closures run too.
func (q *Queue) Drain() int {
	n := 0
	for {
		fn, ok := q.pop()
		if !ok {
			return n
		}
		fn()
		n++
	}
}

// Run executes closures until ctx is done or the queue is closed.
func (q *Queue) Run(ctx context.Context) {
	for {
		if fn, ok := q.pop(); ok {
			fn()
			continue
		}
		select {
		case <-ctx.Done():
			return
		case <-q.done:
			return
		case <-q.ready:
		}
	}
}

// RunUntil executes closures until cond holds or timeout elapses. It
// reports whether cond was met.
func (q *Queue) RunUntil(cond func() bool, timeout time.Duration) bool {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for !cond() {
		if fn, ok := q.pop(); ok {
			fn()
			continue
		}
		select {
		case <-q.ready:
		case <-q.done:
			return cond()
		case <-deadline.C:
			return cond()
		}
	}
	return true
}

// Immediate runs posted closures synchronously on the caller.
type Immediate struct{}

// Post runs fn.
func (Immediate) Post(fn func()) { fn() }
