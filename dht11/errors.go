// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht11

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented is returned by SenseContinuous.
	ErrNotImplemented = errors.New("dht11: not implemented")
	// ErrNoResponse means the line was not low after the start signal while
	// using a policy that requires a response.
	ErrNoResponse = errors.New("dht11: sensor did not answer the start signal")
	// ErrEmptyFrame means all 40 sampled bits were 0. The checksum of such a
	// frame matches but it is what a line stuck low produces.
	ErrEmptyFrame = errors.New("dht11: all-zero frame")
)

// ChecksumError is recorded when the check byte of a frame does not match the
// sum of its data bytes.
type ChecksumError struct {
	Frame [5]byte
	// Sum is the 8 bit sum of Frame[:4].
	Sum byte
	// Timeouts is the number of polls that gave up during the acquisition.
	Timeouts int
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("dht11: checksum 0x%02x does not match 0x%02x for % x (%d poll timeouts)",
		e.Frame[4], e.Sum, e.Frame[:4], e.Timeouts)
}

// RangeError is recorded when Opts.CheckRange is set and a valid frame
// decodes to a value the sensor cannot measure.
type RangeError struct {
	Reading Reading
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("dht11: reading out of range: %s", e.Reading)
}
