// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package backoff

import (
	"time"
)

// A Backoff produces the successive wait durations of a retry sequence.
//
// A Backoff may be stateful: each call to Next advances it, and the
// state is never reset. Construct a fresh policy for every retry
// sequence, and do not share one policy between sequences.
// Implementations are consequently not required to be safe for
// concurrent use by multiple goroutines.
//
// Once Next has returned ok == false, every later call on the same
// instance must also return ok == false. The Policy type enforces this
// for chains built with the fluent API, including chains over a custom
// Backoff lifted in with Wrap.
type Backoff interface {
	// Next returns the duration to wait before the next attempt. If
	// ok is false, no further attempt should be made and the returned
	// duration is meaningless.
	Next() (d time.Duration, ok bool)
}

// A Policy is a Backoff assembled from base policies and decorators
// using the fluent composition API.
//
// Obtain a Policy from one of the base constructors, Instant or
// Constant, or by lifting a custom Backoff with Wrap. Each decorator
// method returns a new Policy wrapping the receiver, so decorators may
// be stacked in any order.
type Policy struct {
	inner   Backoff
	stopped bool
}

// Instant returns a policy with zero delay between attempts.
func Instant() *Policy {
	return Constant(0)
}

// Constant returns a policy with a fixed delay between attempts. The
// duration must not be negative.
func Constant(d time.Duration) *Policy {
	if d < 0 {
		panic("retryx/backoff: constant duration must not be negative")
	}
	return &Policy{inner: constant(d)}
}

// Wrap lifts an arbitrary Backoff implementation into a Policy so that
// the decorator methods can be applied to it.
func Wrap(b Backoff) *Policy {
	if b == nil {
		panic("retryx/backoff: nil backoff")
	}
	return &Policy{inner: b}
}

// Next returns the duration to wait before the next attempt, or
// ok == false once the policy has decided to stop retrying. The stop
// signal is sticky: after the first ok == false result, all later
// calls return ok == false without consulting the wrapped policy.
func (p *Policy) Next() (time.Duration, bool) {
	if p.stopped {
		return 0, false
	}
	d, ok := p.inner.Next()
	if !ok {
		p.stopped = true
		return 0, false
	}
	return d, true
}

type constant time.Duration

func (c constant) Next() (time.Duration, bool) {
	return time.Duration(c), true
}
