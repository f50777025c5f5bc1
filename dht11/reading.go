// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht11

import (
	"fmt"
	"math"

	"github.com/GermanBionicSystems/dhtdevices/common"
	"periph.io/x/conn/v3/physic"
)

// Kind selects the value returned by Dev.Read.
type Kind int

// Supported Kind.
const (
	// TemperatureCelsius is the temperature in °C.
	TemperatureCelsius Kind = iota
	// TemperatureFahrenheit is the temperature in °F.
	TemperatureFahrenheit
	// Humidity is the relative humidity in percent.
	Humidity
)

func (k Kind) String() string {
	switch k {
	case TemperatureCelsius:
		return "TemperatureCelsius"
	case TemperatureFahrenheit:
		return "TemperatureFahrenheit"
	case Humidity:
		return "Humidity"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

const (
	minTemperature = -20*physic.Kelvin + physic.ZeroCelsius
	maxTemperature = 80*physic.Kelvin + physic.ZeroCelsius

	minRH = 0 * physic.PercentRH
	maxRH = 100 * physic.PercentRH
)

// Reading is a decoded measurement.
type Reading struct {
	Humidity    physic.RelativeHumidity
	Temperature physic.Temperature
}

// Celsius returns the temperature in °C.
func (r Reading) Celsius() float64 {
	return float64(r.Temperature-physic.ZeroCelsius) / float64(physic.Kelvin)
}

// Fahrenheit returns the temperature in °F.
func (r Reading) Fahrenheit() float64 {
	return Fahrenheit(r.Celsius())
}

// Percent returns the relative humidity in percent.
func (r Reading) Percent() float64 {
	return float64(r.Humidity) / float64(physic.PercentRH)
}

// Value returns the value selected by k. An unknown Kind yields NaN.
func (r Reading) Value(k Kind) float64 {
	switch k {
	case TemperatureCelsius:
		return r.Celsius()
	case TemperatureFahrenheit:
		return r.Fahrenheit()
	case Humidity:
		return r.Percent()
	default:
		return math.NaN()
	}
}

func (r Reading) String() string {
	return fmt.Sprintf("%s %s", r.Temperature, r.Humidity)
}

// inRange reports whether the sensor can physically produce r.
func (r Reading) inRange() bool {
	return r.Humidity >= minRH && r.Humidity <= maxRH &&
		r.Temperature >= minTemperature && r.Temperature <= maxTemperature
}

// Fahrenheit converts a temperature in °C to °F.
func Fahrenheit(celsius float64) float64 {
	// The conversion forbids fusing into a multiply-add.
	return float64(celsius*1.8) + 32
}

// frame is the 5 bytes sent by the sensor.
type frame [5]byte

// check validates the check byte and rejects the all-zero frame.
func (f frame) check() error {
	if sum := common.Sum8(f[:4]); sum != f[4] {
		return &ChecksumError{Frame: f, Sum: sum}
	}
	if f == (frame{}) {
		return ErrEmptyFrame
	}
	return nil
}

// reading decodes the integral and decimal bytes. The decimal byte is added
// as tenths as-is.
func (f frame) reading() Reading {
	return Reading{
		Humidity:    physic.RelativeHumidity(f[0])*physic.PercentRH + physic.RelativeHumidity(f[1])*(physic.PercentRH/10),
		Temperature: physic.ZeroCelsius + physic.Temperature(f[2])*physic.Kelvin + physic.Temperature(f[3])*(physic.Kelvin/10),
	}
}
