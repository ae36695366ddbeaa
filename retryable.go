// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// A Retryable is a repeatable unit of work that a Sequence can attempt
// any number of times.
//
// The same Retryable is invoked once per attempt, so implementations
// must tolerate repeated calls. Each call to Call starts one fresh
// attempt; the work belonging to that attempt is owned exclusively by
// the sequence until the call returns.
type Retryable[T any] interface {
	// Call makes one attempt at completing the work and blocks until
	// the attempt resolves with a value or an error. The context is the
	// one passed to Sequence.Run; implementations should honor its
	// cancellation so that an abandoned sequence releases the attempt.
	Call(ctx context.Context) (T, error)

	// ReportError reports the error of a failed attempt together with
	// the wait chosen before the next attempt. It is called once per
	// failed attempt that will be retried; the error of the final
	// attempt is surfaced by Sequence.Run instead of reported.
	//
	// ReportError is for observability only. Its return has no effect
	// on the sequence, and it runs synchronously between the failed
	// attempt and the retry wait.
	ReportError(err error, nextRetry time.Duration)
}

// The Func type is an adapter to allow the use of ordinary functions as
// retryable operations. If f is a function with the appropriate
// signature, Func[T](f) is a Retryable[T] that calls f once per
// attempt.
//
// Func reports failed attempts at error level through the global zap
// logger. Wrap a Func with OnError to report elsewhere.
type Func[T any] func(ctx context.Context) (T, error)

// Call calls f(ctx).
func (f Func[T]) Call(ctx context.Context) (T, error) {
	return f(ctx)
}

// ReportError logs the failed attempt's error and the chosen retry wait
// at error level on the global zap logger.
func (f Func[T]) ReportError(err error, nextRetry time.Duration) {
	zap.L().Error("retry attempt failed",
		zap.Error(err),
		zap.Duration("next_retry", nextRetry))
}

// OnError returns a Retryable that attempts work exactly as r does but
// reports failed attempts to report instead of r's own ReportError
// method.
func OnError[T any](r Retryable[T], report func(err error, nextRetry time.Duration)) Retryable[T] {
	if r == nil {
		panic("retryx: nil retryable")
	}
	if report == nil {
		panic("retryx: nil report function")
	}
	return reporter[T]{inner: r, report: report}
}

type reporter[T any] struct {
	inner  Retryable[T]
	report func(error, time.Duration)
}

func (r reporter[T]) Call(ctx context.Context) (T, error) {
	return r.inner.Call(ctx)
}

func (r reporter[T]) ReportError(err error, nextRetry time.Duration) {
	r.report(err, nextRetry)
}
