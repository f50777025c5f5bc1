// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht11

import (
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

const us = time.Microsecond

// fakeClock is a Clock that only moves when told to. Every Now call costs
// step.
type fakeClock struct {
	now    time.Duration
	step   time.Duration
	sleeps []time.Duration
	spins  []time.Duration
}

func (c *fakeClock) Now() time.Duration {
	c.now += c.step
	return c.now
}

func (c *fakeClock) Spin(d time.Duration) {
	c.spins = append(c.spins, d)
	c.now += d
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now += d
}

// maxReads bounds the number of reads of a sensorPin so a poll that never
// ends fails the test instead of hanging it.
const maxReads = 1000000

// sensorPin plays back the waveform a DHT11 drives on the line once the host
// releases it. Every Read costs one microsecond on clock.
type sensorPin struct {
	gpiotest.Pin
	clock *fakeClock

	// frame is what the sensor sends. nil means no sensor: the line stays
	// pulled up.
	frame []byte
	// stuck, when set, is the only level the line ever reads after release.
	stuck *gpio.Level

	released   bool
	releasedAt time.Duration
	reads      int
	outs       []gpio.Level
	pulls      []gpio.Pull
}

func newSensorPin(frame ...byte) *sensorPin {
	clock := &fakeClock{}
	p := &sensorPin{clock: clock}
	p.N = "SIM"
	if len(frame) != 0 {
		p.frame = frame
	}
	return p
}

func stuckPin(l gpio.Level) *sensorPin {
	p := newSensorPin()
	p.stuck = &l
	return p
}

func (p *sensorPin) Out(l gpio.Level) error {
	p.released = false
	p.outs = append(p.outs, l)
	p.L = l
	return nil
}

func (p *sensorPin) In(pull gpio.Pull, edge gpio.Edge) error {
	p.released = true
	p.releasedAt = p.clock.now
	p.pulls = append(p.pulls, pull)
	p.P = pull
	return nil
}

func (p *sensorPin) Read() gpio.Level {
	p.reads++
	if p.reads > maxReads {
		panic("sensorPin: line polled forever")
	}
	p.clock.now += us
	if !p.released {
		return p.L
	}
	return p.level(p.clock.now - p.releasedAt)
}

// level returns the line level t after the host released it.
func (p *sensorPin) level(t time.Duration) gpio.Level {
	if p.stuck != nil {
		return *p.stuck
	}
	if p.frame == nil {
		return gpio.High
	}
	// Reaction time, then the 80µs low/high acknowledgement.
	t -= 20 * us
	if t < 0 {
		return gpio.High
	}
	if t < 80*us {
		return gpio.Low
	}
	t -= 80 * us
	if t < 80*us {
		return gpio.High
	}
	t -= 80 * us
	for i := 0; i < 8*len(p.frame); i++ {
		if t < 50*us {
			return gpio.Low
		}
		t -= 50 * us
		high := 26 * us
		if p.frame[i/8]&(0x80>>(i%8)) != 0 {
			high = 70 * us
		}
		if t < high {
			return gpio.High
		}
		t -= high
	}
	// End of frame low, then the pull-up takes over.
	if t < 50*us {
		return gpio.Low
	}
	return gpio.High
}

// countingPin counts reads of an otherwise idle pin.
type countingPin struct {
	gpiotest.Pin
	reads int
}

func (p *countingPin) Read() gpio.Level {
	p.reads++
	return p.Pin.Read()
}

// faultyPin fails Out or In with the configured error. Successful Out calls
// are recorded.
type faultyPin struct {
	gpiotest.Pin
	outErr error
	inErr  error
	outs   []gpio.Level
}

func (p *faultyPin) Out(l gpio.Level) error {
	if p.outErr != nil {
		return p.outErr
	}
	p.outs = append(p.outs, l)
	p.L = l
	return nil
}

func (p *faultyPin) In(pull gpio.Pull, edge gpio.Edge) error {
	if p.inErr != nil {
		return p.inErr
	}
	p.P = pull
	return nil
}

// newTestDev returns a device on p timed by p's clock.
func newTestDev(p *sensorPin, version string) *Dev {
	d, err := New(p, &Opts{Clock: p.clock, Platform: FixedPlatform(version)})
	if err != nil {
		panic(err)
	}
	return d
}
