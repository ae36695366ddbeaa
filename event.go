// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Sequence to observe its
// progress.
type Event int

const (
	// BeforeSequenceStart identifies the event that occurs before the
	// retry sequence starts.
	//
	// When a Sequence fires BeforeSequenceStart, the execution is
	// non-nil but none of its fields have been set.
	BeforeSequenceStart Event = iota
	// BeforeAttempt identifies the event that occurs before each
	// individual attempt during the sequence.
	//
	// When a Sequence fires BeforeAttempt, the execution's Attempt
	// field contains the number of the attempt that is about to start,
	// and its Err and Wait fields have been reset to their zero values.
	BeforeAttempt
	// AfterAttempt identifies the event that occurs after an attempt
	// resolves, regardless of whether it resolved successfully or not.
	//
	// When a Sequence fires AfterAttempt, the execution's Err field
	// contains the attempt's error, or nil if the attempt succeeded.
	// AfterAttempt runs before the backoff policy is consulted for the
	// next delay.
	AfterAttempt
	// BeforeWait identifies the event that occurs after a retry has
	// been scheduled but before the retry wait starts.
	//
	// When a Sequence fires BeforeWait, the execution's Err field
	// contains the failed attempt's error and its Wait field contains
	// the delay chosen by the backoff policy. BeforeWait fires after
	// the failed attempt's error has been reported through the
	// retryable operation's ReportError hook.
	BeforeWait
	// AfterSequenceEnd identifies the event that occurs after the
	// sequence reaches its terminal outcome.
	//
	// When a Sequence fires AfterSequenceEnd, the execution is in the
	// same state it was in after the final attempt (and last
	// AfterAttempt event) EXCEPT that the end time is set to the time
	// the sequence ended.
	AfterSequenceEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events typed as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeSequenceStart",
	"BeforeAttempt",
	"AfterAttempt",
	"BeforeWait",
	"AfterSequenceEnd",
}

// Events returns a slice containing all events which can occur during a
// retry sequence, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeSequenceStart,
		BeforeAttempt,
		AfterAttempt,
		BeforeWait,
		AfterSequenceEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
