// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GermanBionicSystems/dhtdevices/dht11"
)

// kindList is the set of values to print. It implements flag.Value.
type kindList []dht11.Kind

var allKinds = kindList{dht11.TemperatureCelsius, dht11.TemperatureFahrenheit, dht11.Humidity}

// Set sets the list to the kind represented by s.
func (l *kindList) Set(s string) error {
	switch strings.ToLower(s) {
	case "c":
		*l = kindList{dht11.TemperatureCelsius}
	case "f":
		*l = kindList{dht11.TemperatureFahrenheit}
	case "h":
		*l = kindList{dht11.Humidity}
	case "all":
		*l = append(kindList(nil), allKinds...)
	default:
		return fmt.Errorf("unknown kind %q: expected c, f, h or all", s)
	}
	return nil
}

func (l *kindList) String() string {
	if l == nil || len(*l) != 1 {
		return "all"
	}
	switch (*l)[0] {
	case dht11.TemperatureCelsius:
		return "c"
	case dht11.TemperatureFahrenheit:
		return "f"
	default:
		return "h"
	}
}

// minInterval is the shortest pause the sensor tolerates between two
// measurements.
const minInterval = time.Second

// validate checks the flags that depend on each other.
func validate(n int, interval time.Duration, legacy, bounded bool) error {
	if n < 0 {
		return errors.New("-n must not be negative")
	}
	if interval < minInterval {
		return fmt.Errorf("-interval must be at least %s", minInterval)
	}
	if legacy && bounded {
		return errors.New("use only one of -legacy or -bounded")
	}
	return nil
}
