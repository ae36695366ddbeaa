// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package retryx retries fallible operations under composable backoff
policies.

The simplest entry point is Do, which retries an ordinary function
until it succeeds or the policy stops the sequence:

	policy := backoff.Constant(50 * time.Millisecond).
		Exponential().
		MaxBackoff(2 * time.Second).
		Jitter(0.25).
		NumAttempts(5)
	body, err := retryx.Do(ctx, fetch, policy)

For control over error reporting, implement the Retryable interface, or
adapt a function with Func and override its reporting with OnError:

	op := retryx.OnError(retryx.Func[[]byte](fetch),
		func(err error, nextRetry time.Duration) {
			logger.Warn("fetch failed",
				zap.Error(err),
				zap.Duration("next_retry", nextRetry))
		})
	body, err := retryx.Retry[[]byte](op, policy).Run(ctx)

Retry returns a not-yet-started Sequence. Configure the sequence before
calling Run; the zero values of its fields are valid defaults:

	seq := retryx.Retry[[]byte](op, policy)
	seq.Clock = clock       // timers for retry waits; nil means real time
	seq.Handlers = handlers // lifecycle observers; nil means none
	body, err := seq.Run(ctx)

To hook into the fine-grained progress of a sequence, install a handler
into the appropriate handler chain:

	handlers := &retryx.HandlerGroup{}
	handlers.PushBack(retryx.BeforeAttempt, retryx.HandlerFunc(
		func(_ retryx.Event, e *retryx.Execution) {
			log.Printf("attempt %d starting", e.Attempt)
		}))

A Sequence makes exactly one attempt at a time, waits according to the
backoff policy between attempts, and produces exactly one terminal
outcome: the first success value, or the last attempt's error once the
policy stops the sequence. Cancelling the context passed to Run
abandons any in-flight attempt or wait and surfaces the context error.
*/
package retryx
