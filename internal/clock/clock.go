// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clock provides the one-shot timer facility used by the background
// synchronization components.
//
// Production code uses [Real]. Tests use [Fake], which only moves when
// [Fake.Advance] is called, so debounce and refresh schedules can be asserted
// exactly.
package clock

import "time"

// Clock schedules one-shot delayed callbacks.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc calls f once d has elapsed. f runs on its own goroutine and
	// never synchronously inside AfterFunc.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable pending callback.
type Timer interface {
	// Stop prevents the callback from firing. It returns false if the
	// callback already fired or the timer was already stopped. A callback
	// that has started is not interrupted.
	Stop() bool
}

type realClock struct{}

// Real returns a [Clock] backed by the runtime timers.
func Real() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
