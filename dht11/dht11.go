// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht11

import (
	"errors"
	"fmt"
	"sync"
	"time"

	logger "github.com/d2r2/go-logger"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"github.com/GermanBionicSystems/dhtdevices/common"
)

var lg = logger.NewPackageLogger("dht11", logger.InfoLevel)

const (
	// Minimum low pulse that wakes the sensor up.
	startSignal = 18 * time.Millisecond
	// Delay between releasing the line and the first handshake poll.
	settleDelay = 40 * time.Microsecond
	// Offset into a bit's high period at which the line is sampled. A 0 bit
	// has already fallen, a 1 bit is still high.
	sampleDelay = 28 * time.Microsecond

	frameBits = 40
)

// Opts holds the configuration options for the device.
type Opts struct {
	// Clock times the acquisition. Default is HostClock.
	Clock Clock
	// Platform selects the Variant at every acquisition. Default is
	// HostPlatform.
	Platform Platform
	// Policy, when set, is used for every acquisition instead of the policy
	// of the Variant reported by Platform.
	Policy PollingPolicy
	// QuirkPins are read once each, in order, before every acquisition using
	// a Bounded policy. Some boards desynchronize the first read of the data
	// line otherwise.
	QuirkPins []gpio.PinIn
	// CheckRange rejects valid frames outside 0-100 %RH or -20-80°C.
	CheckRange bool
}

// DefaultOpts holds the default configuration options for the device.
var DefaultOpts = Opts{
	Clock:    HostClock{},
	Platform: HostPlatform{},
}

// Dev is a DHT11 connected to a GPIO line.
type Dev struct {
	p    gpio.PinIO
	opts Opts

	mu      sync.Mutex
	reading Reading
	err     error
}

// New returns a DHT11 device on pin p. The Opts can be nil. The cached
// reading starts at 0°C and 0 %RH.
func New(p gpio.PinIO, opts *Opts) (*Dev, error) {
	if p == nil {
		return nil, errors.New("dht11: pin is required")
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	d := &Dev{
		p:       p,
		opts:    *opts,
		reading: Reading{Temperature: physic.ZeroCelsius},
	}
	if d.opts.Clock == nil {
		d.opts.Clock = HostClock{}
	}
	if d.opts.Platform == nil {
		d.opts.Platform = HostPlatform{}
	}
	return d, nil
}

// Acquire performs one measurement and updates the cached reading if the
// frame is valid. It blocks for the whole exchange, around 22ms with a
// responding sensor. Failures leave the reading unchanged and are reported
// by Err.
func (d *Dev) Acquire() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.acquire()
}

// Read acquires a new measurement and returns the value selected by k from
// the cached reading. After a failed acquisition the previous valid reading
// is used.
func (d *Dev) Read(k Kind) float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.acquire()
	return d.reading.Value(k)
}

// Reading returns the last valid reading without acquiring.
func (d *Dev) Reading() Reading {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reading
}

// Err returns the outcome of the last acquisition, nil if it was valid or if
// none happened yet.
func (d *Dev) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// Sense implements physic.SenseEnv. The env receives the cached reading,
// which is stale when the returned error is not nil. Pressure is always 0.
func (d *Dev) Sense(e *physic.Env) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.acquire()
	e.Temperature = d.reading.Temperature
	e.Humidity = d.reading.Humidity
	e.Pressure = 0
	return d.err
}

// SenseContinuous is not supported; call Sense at an interval of at least
// one second instead.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	return nil, ErrNotImplemented
}

// Precision implements physic.SenseEnv.
func (d *Dev) Precision(e *physic.Env) {
	e.Temperature = physic.Kelvin / 10
	e.Humidity = physic.PercentRH / 10
	e.Pressure = 0
}

// Halt releases the line to its pulled-up idle state.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.p.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return fmt.Errorf("dht11: halt: %w", err)
	}
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("dht11{%s}", d.p)
}

// acquire must be called with mu held.
func (d *Dev) acquire() {
	d.err = d.exchange()
	if d.err != nil {
		lg.Debugf("%s: %v", d, d.err)
	}
}

func (d *Dev) exchange() error {
	policy := d.policy()
	f, timeouts, err := d.readFrame(policy)
	if err != nil {
		return err
	}
	lg.Debugf("%s: %s frame=%v timeouts=%d", d, policy, f, timeouts)
	if err := f.check(); err != nil {
		var cerr *ChecksumError
		if errors.As(err, &cerr) {
			cerr.Timeouts = timeouts
		}
		return err
	}
	r := f.reading()
	if d.opts.CheckRange && !r.inRange() {
		return &RangeError{Reading: r}
	}
	d.reading = r
	return nil
}

// policy selects the PollingPolicy of this acquisition.
func (d *Dev) policy() PollingPolicy {
	if d.opts.Policy != nil {
		return d.opts.Policy
	}
	return SelectVariant(d.opts.Platform.HardwareVersion()).Policy()
}

// readFrame runs the timing-critical exchange and returns the sampled frame
// along with the number of polls that timed out.
func (d *Dev) readFrame(policy PollingPolicy) (frame, int, error) {
	var f frame
	c := d.opts.Clock
	if _, ok := policy.(Bounded); ok {
		for _, q := range d.opts.QuirkPins {
			if q != nil {
				q.Read()
			}
		}
	}

	// Start signal.
	if err := d.p.Out(gpio.Low); err != nil {
		return f, 0, fmt.Errorf("dht11: start signal: %w", err)
	}
	c.Sleep(startSignal)

	// Release the line and let it settle.
	if err := d.p.In(gpio.PullUp, gpio.NoEdge); err != nil {
		// End the start signal anyway.
		_ = d.p.Out(gpio.High)
		return f, 0, fmt.Errorf("dht11: releasing line: %w", err)
	}
	d.p.Read()
	c.Spin(settleDelay)
	if policy.RequiresResponse() && d.p.Read() != gpio.Low {
		return f, 0, ErrNoResponse
	}

	timeouts := 0
	await := func(l gpio.Level) {
		if !policy.Await(d.p, l, c) {
			timeouts++
		}
	}

	// Handshake: the sensor pulls low, then high.
	await(gpio.Low)
	await(gpio.High)

	var bits [frameBits]byte
	for i := range bits {
		await(gpio.High)
		await(gpio.Low)
		c.Spin(sampleDelay)
		if d.p.Read() == gpio.High {
			bits[i] = 1
		}
	}
	copy(f[:], common.PackBits(bits[:]))
	return f, timeouts, nil
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
