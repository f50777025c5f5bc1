// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package dhtdevices is a container for the DHT11 single-wire driver and
// its tooling.
//
// The driver lives in dht11, the human readable output in readout and the
// command line tool in cmd/dht11.
package dhtdevices
