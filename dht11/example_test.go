// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht11_test

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/rpi"

	"github.com/GermanBionicSystems/dhtdevices/dht11"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// The data line is on header pin 7 (GPIO4).
	d, err := dht11.New(rpi.P1_7, nil)
	if err != nil {
		log.Fatalf("failed to initialize dht11: %v", err)
	}
	defer d.Halt()

	// Every Read is a new measurement. Values stay at their last valid
	// reading when the exchange fails.
	fmt.Printf("%.1f°C\n", d.Read(dht11.TemperatureCelsius))
	fmt.Printf("%.1f°F\n", d.Read(dht11.TemperatureFahrenheit))
	fmt.Printf("%.1f%%\n", d.Read(dht11.Humidity))
}

func ExampleDev_Sense() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	p := gpioreg.ByName("GPIO4")
	if p == nil {
		log.Fatal("no GPIO4")
	}
	// Force the bounded polling loop, and read the first header pins before
	// each exchange.
	opts := dht11.DefaultOpts
	opts.Policy = dht11.Bounded{Timeout: dht11.DefaultTimeout}
	opts.QuirkPins = []gpio.PinIn{gpioreg.ByName("GPIO2"), gpioreg.ByName("GPIO3")}
	d, err := dht11.New(p, &opts)
	if err != nil {
		log.Fatal(err)
	}

	e := physic.Env{}
	if err := d.Sense(&e); err != nil {
		log.Printf("stale reading: %v", err)
	}
	fmt.Printf("%8s %9s\n", e.Temperature, e.Humidity)
}
