// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, the additive checksum and bit packing of single-wire sensor
// frames.
package common

// Sum8 returns the sum of bytes truncated to 8 bits. DHTxx sensors append it
// to their data bytes as check value.
func Sum8(bytes []byte) byte {
	var sum byte
	for _, val := range bytes {
		sum += val
	}
	return sum
}

// PackBits packs a slice of sampled bits into bytes, most significant bit
// first. Every non-zero entry is a 1. A trailing group shorter than 8 entries
// is dropped.
func PackBits(bits []byte) []byte {
	out := make([]byte, len(bits)/8)
	for ix := range out {
		for j := range 8 {
			if bits[8*ix+j] != 0 {
				out[ix] |= 1 << (7 - j)
			}
		}
	}
	return out
}
