// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht11

import (
	"fmt"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// DefaultTimeout is the longest a Bounded policy polls for a single level
// change.
const DefaultTimeout = 100 * time.Microsecond

// PollingPolicy decides how long the driver polls the line while waiting for
// the sensor to change its level.
type PollingPolicy interface {
	// Await polls p for as long as it reads l. It returns false if it gave
	// up before the level changed.
	Await(p gpio.PinIn, l gpio.Level, c Clock) bool
	// RequiresResponse reports whether the sensor must already hold the line
	// low when the settle delay after the start signal ends. The acquisition
	// is abandoned otherwise.
	RequiresResponse() bool
	fmt.Stringer
}

// Bounded gives up polling once Timeout has elapsed. The acquisition then
// carries on with whatever the line reads and the checksum rejects the
// garbage.
type Bounded struct {
	Timeout time.Duration
}

// Await implements PollingPolicy.
func (b Bounded) Await(p gpio.PinIn, l gpio.Level, c Clock) bool {
	start := c.Now()
	for p.Read() == l {
		if c.Now()-start > b.Timeout {
			return false
		}
	}
	return true
}

// RequiresResponse implements PollingPolicy.
func (b Bounded) RequiresResponse() bool {
	return false
}

func (b Bounded) String() string {
	return fmt.Sprintf("Bounded{%s}", b.Timeout)
}

// Unbounded polls until the level changes, however long it takes. A sensor
// that stops answering mid-frame blocks the caller forever.
type Unbounded struct{}

// Await implements PollingPolicy.
func (Unbounded) Await(p gpio.PinIn, l gpio.Level, _ Clock) bool {
	for p.Read() == l {
	}
	return true
}

// RequiresResponse implements PollingPolicy.
func (Unbounded) RequiresResponse() bool {
	return true
}

func (Unbounded) String() string {
	return "Unbounded"
}

// Variant is the timing profile of a host generation.
type Variant int

const (
	// Modern hosts poll with a timeout and need QuirkPins read first.
	Modern Variant = iota
	// Legacy hosts are first generation boards whose GPIO reads are too slow
	// for the bounded loop; they poll without a timeout.
	Legacy
)

// SelectVariant returns the Variant matching a hardware version string as
// reported by a Platform. Versions starting with "1" are Legacy.
func SelectVariant(version string) Variant {
	if strings.HasPrefix(version, "1") {
		return Legacy
	}
	return Modern
}

// Policy returns the PollingPolicy of the variant.
func (v Variant) Policy() PollingPolicy {
	if v == Legacy {
		return Unbounded{}
	}
	return Bounded{Timeout: DefaultTimeout}
}

func (v Variant) String() string {
	switch v {
	case Modern:
		return "Modern"
	case Legacy:
		return "Legacy"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

var _ PollingPolicy = Bounded{}
var _ PollingPolicy = Unbounded{}
