// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import (
	"context"
	"time"
)

// An Execution represents the observable state of a single retry
// sequence.
//
// When a Sequence runs, it creates one Execution and updates it as the
// sequence progresses (when an attempt starts, when it resolves, and
// when a retry is scheduled). Event handlers receive the Execution at
// each lifecycle event.
//
// Handlers may attach values to an Execution using its SetValue method
// and read them back using the Value method. However, they should treat
// the structure's exported field values as immutable and leave them
// unmodified, as the execution state is vital to the correct
// functioning of the sequence.
type Execution struct {
	// Attempt is the zero-based number of the current attempt in the
	// sequence. It is zero on the initial attempt, one on the first
	// retry, and so on.
	//
	// When the sequence has ended, Attempt contains the zero-based
	// number of the last attempt made, so a sequence that ends after an
	// initial attempt plus two retries has an attempt number of 2.
	Attempt int

	// Start is the start time of the sequence. It is assigned a
	// non-zero value when the sequence starts, and this value remains
	// constant thereafter.
	Start time.Time

	// End is the end time of the sequence. It contains the zero value
	// until the sequence reaches its terminal outcome, when it is set
	// to the current time.
	End time.Time

	// Err is the error of the most recent resolved attempt. It is nil
	// while an attempt is underway, nil after an attempt resolves
	// successfully, and non-nil after an attempt resolves with an
	// error.
	//
	// Once the sequence has Ended, Err no longer changes and has the
	// same value as the error returned by Sequence.Run: nil on
	// success, the final attempt's error on exhaustion, or the context
	// error if the sequence was abandoned.
	Err error

	// Wait is the delay chosen before the next attempt. It is set when
	// a retry is scheduled, immediately before the BeforeWait event
	// fires, and reset to zero when the next attempt starts.
	Wait time.Duration

	// data contains arbitrary user data attached via SetValue.
	data context.Context
}

// Duration returns the duration of the sequence.
//
// If the sequence has not yet started, the duration is zero. If the
// sequence has Ended, the duration returned is equal to End minus
// Start. Otherwise, it is equal to the current time minus Start.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return time.Duration(0)
	} else if !e.Ended() {
		return time.Now().Sub(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Started indicates whether the sequence has started.
//
// If the return value is true, the sequence has started and Start is a
// non-zero time indicating the sequence start time.
func (e *Execution) Started() bool {
	return e.Start != (time.Time{})
}

// Ended indicates whether the sequence has ended.
//
// If the return value is true, the sequence is over, End is a non-zero
// time, and there will be no further changes to the execution.
func (e *Execution) Ended() bool {
	return e.End != (time.Time{})
}

// SetValue allows event handlers to store arbitrary data in the
// execution.
//
// The key must follow the same rules as the key parameter in
// context.WithValue, namely it:
//
// • may not be nil;
//
// • must be comparable;
//
// • should not be of type string or any other built-in type to avoid
// collisions between different event handlers putting data into the
// same execution.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}

	e.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this execution for key,
// or nil if there is no value associated with key.
func (e *Execution) Value(key interface{}) interface{} {
	ctx := e.data
	if ctx == nil {
		return nil
	}

	return ctx.Value(key)
}
