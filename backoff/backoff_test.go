// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package backoff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstant(t *testing.T) {
	p := Instant()
	for i := 0; i < 100; i++ {
		d, ok := p.Next()
		require.True(t, ok)
		require.Equal(t, time.Duration(0), d)
	}
}

func TestConstant(t *testing.T) {
	t.Run("negative", func(t *testing.T) {
		assert.PanicsWithValue(t, "retryx/backoff: constant duration must not be negative", func() {
			Constant(-1 * time.Second)
		})
	})
	t.Run("zero", func(t *testing.T) {
		d, ok := Constant(0).Next()
		assert.True(t, ok)
		assert.Equal(t, time.Duration(0), d)
	})
	t.Run("unbounded", func(t *testing.T) {
		p := Constant(5 * time.Second)
		for i := 0; i < 1000; i++ {
			d, ok := p.Next()
			require.True(t, ok)
			require.Equal(t, 5*time.Second, d)
		}
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "retryx/backoff: nil backoff", func() {
			Wrap(nil)
		})
	})
	t.Run("custom", func(t *testing.T) {
		s := &script{steps: []step{
			{d: time.Second, ok: true},
			{d: 3 * time.Second, ok: true},
		}}
		p := Wrap(s).MaxBackoff(2 * time.Second)
		d, ok := p.Next()
		assert.True(t, ok)
		assert.Equal(t, time.Second, d)
		d, ok = p.Next()
		assert.True(t, ok)
		assert.Equal(t, 2*time.Second, d)
	})
}

// TestPolicy_StickyStop verifies that a chain never un-stops, even over
// a custom Backoff that violates the contract by resuming after a stop.
func TestPolicy_StickyStop(t *testing.T) {
	s := &script{steps: []step{
		{d: time.Second, ok: true},
		{ok: false},
		{d: time.Second, ok: true},
	}}
	p := Wrap(s)
	d, ok := p.Next()
	assert.True(t, ok)
	assert.Equal(t, time.Second, d)
	for i := 0; i < 10; i++ {
		_, ok = p.Next()
		require.False(t, ok)
	}
}

type step struct {
	d  time.Duration
	ok bool
}

// script is a Backoff returning a fixed sequence of answers, repeating
// the sequence once exhausted.
type script struct {
	steps []step
	i     int
}

func (s *script) Next() (time.Duration, bool) {
	st := s.steps[s.i%len(s.steps)]
	s.i++
	return st.d, st.ok
}
