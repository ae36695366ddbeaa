// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package backoff

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/jonboulle/clockwork"
)

// Exponential grows the wrapped policy's durations exponentially. The
// growth factor starts at 1 and doubles on every query, so the wrapped
// policy's value is multiplied by 1, 2, 4, 8, and so on. The factor
// applies to whatever the wrapped policy returns on that query, which
// need not be constant.
//
// The multiplication saturates rather than overflowing, so very long
// chains converge on the maximum representable duration.
func (p *Policy) Exponential() *Policy {
	return &Policy{inner: &exponential{inner: p, factor: 1}}
}

// maxFactor bounds the growth factor so that doubling cannot wrap
// around to zero. Durations saturate long before the factor does.
const maxFactor = uint64(1) << 62

type exponential struct {
	inner  Backoff
	factor uint64
}

func (x *exponential) Next() (time.Duration, bool) {
	d, ok := x.inner.Next()
	if !ok {
		return 0, false
	}
	grown := scale(d, x.factor)
	if x.factor < maxFactor {
		x.factor <<= 1
	}
	return grown, true
}

// scale multiplies a non-negative duration by factor, saturating at the
// maximum duration instead of overflowing.
func scale(d time.Duration, factor uint64) time.Duration {
	if d <= 0 || factor == 0 {
		return 0
	}
	if uint64(math.MaxInt64)/factor < uint64(d) {
		return time.Duration(math.MaxInt64)
	}
	return d * time.Duration(factor)
}

// MaxBackoff clamps the wrapped policy's durations to at most max,
// which must not be negative. Values at or below max pass through
// unchanged.
func (p *Policy) MaxBackoff(max time.Duration) *Policy {
	if max < 0 {
		panic("retryx/backoff: maximum backoff must not be negative")
	}
	return &Policy{inner: maxBackoff{inner: p, max: max}}
}

type maxBackoff struct {
	inner Backoff
	max   time.Duration
}

func (m maxBackoff) Next() (time.Duration, bool) {
	d, ok := m.inner.Next()
	if !ok {
		return 0, false
	}
	if d > m.max {
		d = m.max
	}
	return d, true
}

// MinBackoff raises the wrapped policy's durations to at least min,
// which must not be negative. Values at or above min pass through
// unchanged.
func (p *Policy) MinBackoff(min time.Duration) *Policy {
	if min < 0 {
		panic("retryx/backoff: minimum backoff must not be negative")
	}
	return &Policy{inner: minBackoff{inner: p, min: min}}
}

type minBackoff struct {
	inner Backoff
	min   time.Duration
}

func (m minBackoff) Next() (time.Duration, bool) {
	d, ok := m.inner.Next()
	if !ok {
		return 0, false
	}
	if d < m.min {
		d = m.min
	}
	return d, true
}

// Jitter randomizes the wrapped policy's durations. For a wrapped value
// d, the returned duration is drawn uniformly from the interval
// [d - d*scale, d), so it never exceeds d and never falls below
// d*(1-scale). A fresh draw is made on every query.
//
// The scale must be greater than zero and at most one.
func (p *Policy) Jitter(scale float64) *Policy {
	if !(scale > 0) {
		panic("retryx/backoff: jitter scale must be greater than zero")
	}
	if scale > 1 {
		panic("retryx/backoff: jitter scale must be at most one")
	}
	return &Policy{inner: jitter{inner: p, scale: scale}}
}

type jitter struct {
	inner Backoff
	scale float64
}

func (j jitter) Next() (time.Duration, bool) {
	d, ok := j.inner.Next()
	if !ok {
		return 0, false
	}
	margin := time.Duration(j.scale * float64(d))
	if margin <= 0 {
		return d, true
	}
	return d - margin + time.Duration(rand.Int64N(int64(margin))), true
}

// NumAttempts stops the sequence after n total attempts. Since the
// policy is only queried after a failed attempt, the wrapped policy
// answers the first n-1 queries and every query after that reports a
// stop. The count must be positive.
func (p *Policy) NumAttempts(n int) *Policy {
	if n < 1 {
		panic("retryx/backoff: attempt count must be positive")
	}
	return &Policy{inner: &numAttempts{inner: p, remaining: n - 1}}
}

type numAttempts struct {
	inner     Backoff
	remaining int
}

func (a *numAttempts) Next() (time.Duration, bool) {
	if a.remaining < 1 {
		return 0, false
	}
	a.remaining--
	return a.inner.Next()
}

// Deadline stops the sequence once the wall clock reaches t. Queries
// made before t delegate to the wrapped policy; queries made at or
// after t report a stop. Deadline only prevents further retries from
// being scheduled, it does not abort an attempt already in flight.
func (p *Policy) Deadline(t time.Time) *Policy {
	return &Policy{inner: deadline{inner: p, at: t, clock: clockwork.NewRealClock()}}
}

type deadline struct {
	inner Backoff
	at    time.Time
	clock clockwork.Clock
}

func (d deadline) Next() (time.Duration, bool) {
	if !d.clock.Now().Before(d.at) {
		return 0, false
	}
	return d.inner.Next()
}
