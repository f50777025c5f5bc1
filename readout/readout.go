// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package readout presents dht11 readings to humans, either on an ANSI
// terminal or on any periph display.
package readout

import (
	"fmt"

	"github.com/GermanBionicSystems/dhtdevices/dht11"
)

// Format returns the value selected by k with one decimal and its unit.
func Format(r dht11.Reading, k dht11.Kind) string {
	switch k {
	case dht11.TemperatureCelsius:
		return fmt.Sprintf("%.1f°C", r.Celsius())
	case dht11.TemperatureFahrenheit:
		return fmt.Sprintf("%.1f°F", r.Fahrenheit())
	case dht11.Humidity:
		return fmt.Sprintf("%.1f%%rH", r.Percent())
	default:
		return k.String()
	}
}

// scale returns where the value selected by k sits in the sensor's range,
// clamped to [0, 1].
func scale(r dht11.Reading, k dht11.Kind) float64 {
	var v, lo, hi float64
	switch k {
	case dht11.TemperatureCelsius:
		v, lo, hi = r.Celsius(), -20, 80
	case dht11.TemperatureFahrenheit:
		v, lo, hi = r.Fahrenheit(), -4, 176
	case dht11.Humidity:
		v, lo, hi = r.Percent(), 0, 100
	default:
		return 0
	}
	f := (v - lo) / (hi - lo)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
