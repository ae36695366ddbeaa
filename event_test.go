// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvents(t *testing.T) {
	assert.Len(t, eventNames, numEvents)
	assert.Len(t, Events(), numEvents)
	events := Events()
	assert.Equal(t, BeforeSequenceStart, events[BeforeSequenceStart])
	assert.Equal(t, BeforeAttempt, events[BeforeAttempt])
	assert.Equal(t, AfterAttempt, events[AfterAttempt])
	assert.Equal(t, BeforeWait, events[BeforeWait])
	assert.Equal(t, AfterSequenceEnd, events[AfterSequenceEnd])
}

func TestEvent_Name(t *testing.T) {
	assert.Equal(t, "BeforeSequenceStart", BeforeSequenceStart.Name())
	assert.Equal(t, "BeforeAttempt", BeforeAttempt.Name())
	assert.Equal(t, "AfterAttempt", AfterAttempt.Name())
	assert.Equal(t, "BeforeWait", BeforeWait.Name())
	assert.Equal(t, "AfterSequenceEnd", AfterSequenceEnd.Name())
}
