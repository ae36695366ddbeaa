// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFunc(t *testing.T) {
	t.Run("Call", func(t *testing.T) {
		f := Func[string](func(_ context.Context) (string, error) {
			return "value", nil
		})
		value, err := f.Call(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "value", value)
	})
	t.Run("ReportError", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)
		restore := zap.ReplaceGlobals(zap.New(core))
		defer restore()

		f := Func[string](func(_ context.Context) (string, error) {
			return "", errors.New("boom")
		})
		f.ReportError(errors.New("boom"), 250*time.Millisecond)

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "retry attempt failed", entries[0].Message)
		fields := entries[0].ContextMap()
		assert.Equal(t, "boom", fields["error"])
		assert.Equal(t, 250*time.Millisecond, fields["next_retry"])
	})
}

func TestOnError(t *testing.T) {
	t.Run("nil retryable", func(t *testing.T) {
		assert.PanicsWithValue(t, "retryx: nil retryable", func() {
			OnError[int](nil, func(error, time.Duration) {})
		})
	})
	t.Run("nil report function", func(t *testing.T) {
		assert.PanicsWithValue(t, "retryx: nil report function", func() {
			OnError[int](Func[int](nil), nil)
		})
	})
	t.Run("overrides reporting", func(t *testing.T) {
		var gotErr error
		var gotWait time.Duration
		r := OnError[string](&testOp{value: "done"}, func(err error, wait time.Duration) {
			gotErr = err
			gotWait = wait
		})
		r.ReportError(errors.New("boom"), time.Second)
		assert.EqualError(t, gotErr, "boom")
		assert.Equal(t, time.Second, gotWait)

		value, err := r.Call(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "done", value)
	})
}
