// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package dht11 provides a bit-banged driver for the Aosong DHT11
// temperature/humidity sensor connected to a single GPIO line.
//
// The host pulls the line low for 18ms, releases it to the pull-up and waits
// for the sensor's low/high acknowledgement. The sensor then sends 40 bits,
// each a ~50µs low period followed by a high period of ~26µs (0) or ~70µs
// (1). The driver samples the line 28µs into every high period. The 5 bytes
// are humidity integral and decimal parts, temperature integral and decimal
// parts, and the 8 bit sum of the first four.
//
// Range: 20-90 %RH, 0-50°C
//
// Resolution: 0.1 %RH, 0.1°C, as carried by the decimal bytes. Most parts
// only ever send 0 in the humidity decimal byte.
//
// A failed acquisition never surfaces as an error from Read; the previous
// valid reading is returned instead. Err and Sense report the outcome of the
// last acquisition for callers that care.
//
// # Datasheet
//
// https://www.mouser.com/datasheet/2/758/DHT11-Technical-Data-Sheet-Translated-Version-1143054.pdf
package dht11
