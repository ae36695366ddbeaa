// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package backoff provides composable policies controlling how long to
// wait between the attempts of a retry sequence, and when to stop
// retrying altogether.
//
// The interface Backoff defines the policy contract: a single Next
// method producing either the next wait duration or a stop signal. A
// policy is assembled fluently, starting from one of the base
// constructors Instant or Constant and layering on decorator methods in
// whatever order suits the use case:
//
//	policy := backoff.Constant(50 * time.Millisecond).
//		Exponential().
//		MaxBackoff(5 * time.Second).
//		Jitter(0.25).
//		NumAttempts(10)
//
// Decorator order matters. In the example above, MaxBackoff clamps the
// exponentially grown value, and Jitter randomizes the clamped value.
// Reversing Exponential and MaxBackoff would instead clamp the base
// duration and then grow the clamp without bound.
//
// If the built-in policies are insufficient, a custom Backoff
// implementation can be lifted into the fluent API with Wrap.
package backoff
