// Package bridge hands units of work from any goroutine to the single
// goroutine that owns the live drawing state.
//
// Producers call [Queue.Submit] and receive a [Result] handle; the
// owning goroutine runs [Queue.Run], which executes submitted tasks one
// at a time in submission order. No task ever runs concurrently with
// another task, so work submitted through the bridge may touch the
// device without further locking.
package bridge

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/plotgd/plotgd"
)

// Task is one unit of work executed on the consumer goroutine.
type Task func() (any, error)

// Queue is the producer side of the bridge. Any number of goroutines
// may submit concurrently; exactly one goroutine must consume by
// calling Run.
//
// Once enqueued, a task always executes during the next drain, even
// when its caller abandons the result handle. Cancellation of an
// individual task is not supported.
type Queue struct {
	mu    sync.Mutex
	tasks []pending

	// wake holds at most one pending signal; submissions while a wake
	// is already pending coalesce into the same drain.
	wake chan struct{}

	// done signals the run loop to drain once more and exit.
	done   chan struct{}
	closed atomic.Bool
}

type pending struct {
	run    Task
	result *Result
}

// NewQueue returns an empty queue ready for producers and one consumer.
func NewQueue() *Queue {
	return &Queue{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Submit enqueues task and wakes the consumer. The returned handle
// delivers the task's outcome.
//
// Submitting after Close is a caller error; the task is silently
// dropped once the final drain has passed and its handle never
// resolves.
func (q *Queue) Submit(task Task) *Result {
	r := &Result{done: make(chan struct{})}
	q.mu.Lock()
	q.tasks = append(q.tasks, pending{run: task, result: r})
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
		// A wake is already pending; the scheduled drain picks this
		// task up too.
		plotgd.Logger().Debug("bridge: wake coalesced")
	}
	return r
}

// Run executes submitted tasks until ctx is canceled or the queue is
// closed, then drains the remaining tasks once and returns. Exactly
// one goroutine may run the loop.
func (q *Queue) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			q.drain()
			return
		case <-q.done:
			q.drain()
			return
		case <-q.wake:
			q.drain()
		}
	}
}

// Close stops the run loop after a final drain. Close is safe to call
// multiple times; the orchestrator must guarantee that no submissions
// happen once teardown begins.
func (q *Queue) Close() {
	if !q.closed.CompareAndSwap(false, true) {
		return
	}
	close(q.done)
}

// drain pops and executes tasks one at a time until the queue is
// empty, picking up tasks submitted while it runs.
func (q *Queue) drain() {
	for {
		q.mu.Lock()
		if len(q.tasks) == 0 {
			q.tasks = nil
			q.mu.Unlock()
			return
		}
		p := q.tasks[0]
		q.tasks = q.tasks[1:]
		q.mu.Unlock()

		p.result.deliver(execute(p.run))
	}
}

// execute runs one task, converting a panic into an error so a failing
// task cannot take down the consumer goroutine.
func execute(task Task) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("bridge: task panic: %v", r)
		}
	}()
	return task()
}

// Result delivers the outcome of one submitted task.
type Result struct {
	value any
	err   error
	done  chan struct{}
}

func (r *Result) deliver(value any, err error) {
	r.value = value
	r.err = err
	close(r.done)
}

// Wait blocks until the task has run or ctx is canceled. Abandoning a
// handle does not block the consumer.
func (r *Result) Wait(ctx context.Context) (any, error) {
	select {
	case <-r.done:
		return r.value, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
