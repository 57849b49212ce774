// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package eventloop serializes the background callbacks of the client.
//
// Timer callbacks, realtime notifications and network completions all run
// through [Loop.Dispatch], one at a time, so every callback observes and
// leaves the shared state consistent. Network calls themselves run off the
// loop via [Go] and post their result back when they finish.
package eventloop

import (
	"context"
	"sync"
)

// Loop is a serialized executor. The zero value is not usable; create loops
// with [New].
type Loop struct {
	mu sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc
	tasks  sync.WaitGroup
}

// New creates a loop whose task context derives from parent.
func New(parent context.Context) *Loop {
	ctx, cancel := context.WithCancel(parent)
	return &Loop{ctx: ctx, cancel: cancel}
}

// Dispatch runs fn with exclusive access to loop-owned state and returns when
// fn returns.
//
// Dispatch is not re-entrant: calling it from inside a dispatched function
// deadlocks.
func (l *Loop) Dispatch(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn()
}

// Context returns the context handed to tasks started with [Go]. It is
// cancelled by [Loop.Close].
func (l *Loop) Context() context.Context {
	return l.ctx
}

// Wait blocks until every task started with [Go] has dispatched its
// completion.
func (l *Loop) Wait() {
	l.tasks.Wait()
}

// Close cancels the task context and waits for in-flight tasks to deliver
// their results.
func (l *Loop) Close() {
	l.cancel()
	l.tasks.Wait()
}

// Go runs task on its own goroutine and dispatches done with its result back
// onto the loop. The completion is always delivered, even when the task
// context was cancelled in the meantime.
//
// Go may be called from inside a dispatched function.
func Go[T any](l *Loop, task func(ctx context.Context) (T, error), done func(T, error)) {
	l.tasks.Add(1)
	go func() {
		defer l.tasks.Done()

		result, err := task(l.ctx)
		l.Dispatch(func() {
			done(result, err)
		})
	}()
}
