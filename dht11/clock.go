// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht11

import (
	"time"

	"github.com/gavv/monotime"
)

// Clock is the time source of an acquisition.
type Clock interface {
	// Now returns a monotonic timestamp with microsecond resolution or better.
	Now() time.Duration
	// Spin busy-waits for d without yielding the calling thread.
	Spin(d time.Duration)
	// Sleep pauses for d. It is only used for the start signal.
	Sleep(d time.Duration)
}

// HostClock is the Clock of the host, backed by its monotonic counter.
type HostClock struct{}

// Now implements Clock.
func (HostClock) Now() time.Duration {
	return monotime.Now()
}

// Spin implements Clock.
func (HostClock) Spin(d time.Duration) {
	start := monotime.Now()
	for monotime.Now()-start < d {
	}
}

// Sleep implements Clock.
func (HostClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

var _ Clock = HostClock{}
