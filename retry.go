// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/gogama/retryx/backoff"
)

var emptyHandlers = HandlerGroup{}

// A Sequence drives a retryable operation to a single terminal outcome,
// retrying failed attempts according to a backoff policy.
//
// Obtain a Sequence from Retry, optionally configure its exported
// fields, and call Run exactly once. A Sequence is not reusable: it
// owns its backoff policy, whose state advances across attempts, and it
// is spent once Run returns.
//
// Independent Sequence instances are fully isolated and may run
// concurrently, but a single Sequence must not be shared between
// goroutines.
type Sequence[T any] struct {
	// Clock supplies the timers used to realize retry waits and the
	// timestamps recorded on the execution.
	//
	// If Clock is nil, the real wall clock is used. Tests can inject a
	// fake clock to drive waits without sleeping.
	Clock clockwork.Clock
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during the sequence.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup

	retryable Retryable[T]
	policy    backoff.Backoff
	exec      Execution
	state     state
	trying    <-chan outcome[T]
	waiting   clockwork.Timer
	spent     bool
}

// state tags the control state of a running sequence.
type state int

const (
	// statePending means the sequence is about to start an attempt.
	statePending state = iota
	// stateTrying means an attempt is in flight.
	stateTrying
	// stateWaiting means a retry wait is in flight.
	stateWaiting
)

type outcome[T any] struct {
	value T
	err   error
}

// Retry creates a retry sequence that will run the retryable operation
// r under the backoff policy b. The returned sequence has not started;
// run it to completion with Run.
//
// The sequence takes ownership of b: the policy's state advances as the
// sequence progresses, so a policy must not be shared between
// sequences.
func Retry[T any](r Retryable[T], b backoff.Backoff) *Sequence[T] {
	if r == nil {
		panic("retryx: nil retryable")
	}
	if b == nil {
		panic("retryx: nil backoff")
	}
	return &Sequence[T]{retryable: r, policy: b}
}

// Do retries the function f under the backoff policy b until it
// succeeds or the policy stops the sequence. It is shorthand for
// adapting f with Func and running the sequence returned by Retry.
//
// Failed attempts are reported the way Func reports them, at error
// level through the global zap logger. For custom reporting use Retry
// with OnError or with your own Retryable implementation.
func Do[T any](ctx context.Context, f func(ctx context.Context) (T, error), b backoff.Backoff) (T, error) {
	return Retry[T](Func[T](f), b).Run(ctx)
}

// Run drives the sequence to its terminal outcome and returns it: the
// value of the first successful attempt, or the error of the last
// attempt once the backoff policy stops the sequence. A failed attempt
// whose retry is stopped by the policy surfaces its own error, so a
// sequence that never retries is indistinguishable, by the error alone,
// from one exhausted after many attempts.
//
// If ctx is cancelled while an attempt or a wait is in flight, Run
// abandons the in-flight work and returns ctx.Err(). The context is
// also passed to every attempt, so operations that honor cancellation
// resolve promptly when the sequence is abandoned.
//
// Run must be called exactly once; calling it again panics.
func (s *Sequence[T]) Run(ctx context.Context) (T, error) {
	if s.spent {
		panic("retryx: Run called again on a spent Sequence")
	}
	s.spent = true

	clock := s.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	handlers := s.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}

	handlers.run(BeforeSequenceStart, &s.exec)
	s.exec.Start = clock.Now()
	value, err := s.run(ctx, clock, handlers)
	s.exec.Err = err
	s.exec.End = clock.Now()
	handlers.run(AfterSequenceEnd, &s.exec)
	return value, err
}

// run loops over the sequence states until a terminal outcome is
// reached. Invariants: at most one attempt and at most one wait are in
// flight, and never both; the only points at which run blocks are the
// two selects, one per kind of in-flight work.
func (s *Sequence[T]) run(ctx context.Context, clock clockwork.Clock, handlers *HandlerGroup) (T, error) {
	var zero T
	for {
		switch s.state {
		case statePending:
			s.waiting = nil
			s.exec.Err = nil
			s.exec.Wait = 0
			handlers.run(BeforeAttempt, &s.exec)
			s.trying = startAttempt[T](ctx, s.retryable)
			s.state = stateTrying
		case stateTrying:
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case out := <-s.trying:
				s.exec.Err = out.err
				handlers.run(AfterAttempt, &s.exec)
				if out.err == nil {
					return out.value, nil
				}
				wait, ok := s.policy.Next()
				if !ok {
					return zero, out.err
				}
				s.retryable.ReportError(out.err, wait)
				s.exec.Wait = wait
				handlers.run(BeforeWait, &s.exec)
				s.trying = nil
				s.waiting = clock.NewTimer(wait)
				s.state = stateWaiting
			}
		case stateWaiting:
			select {
			case <-ctx.Done():
				s.waiting.Stop()
				return zero, ctx.Err()
			case <-s.waiting.Chan():
				s.exec.Attempt++
				s.state = statePending
			}
		}
	}
}

// startAttempt starts one fresh attempt in its own goroutine and
// returns the channel on which the attempt's outcome will be delivered.
// The channel is buffered so an abandoned attempt can still resolve and
// release its goroutine.
func startAttempt[T any](ctx context.Context, r Retryable[T]) <-chan outcome[T] {
	ch := make(chan outcome[T], 1)
	go func() {
		value, err := r.Call(ctx)
		ch <- outcome[T]{value: value, err: err}
	}()
	return ch
}
