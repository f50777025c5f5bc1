// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// dht11 reads a DHT11 sensor and prints its measurements.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"syscall"
	"time"

	logger "github.com/d2r2/go-logger"
	shell "github.com/d2r2/go-shell"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/dhtdevices/dht11"
	"github.com/GermanBionicSystems/dhtdevices/readout"
)

var lg = logger.NewPackageLogger("main", logger.InfoLevel)

func mainImpl() error {
	kinds := append(kindList(nil), allKinds...)
	pin := flag.String("pin", "GPIO4", "GPIO the data line is connected to")
	flag.Var(&kinds, "kind", "value to print: c, f, h or all")
	n := flag.Int("n", 1, "number of measurements, 0 to run until interrupted")
	interval := flag.Duration("interval", minInterval, "pause between measurements")
	verbose := flag.Bool("v", false, "verbose logging")
	legacy := flag.Bool("legacy", false, "always use the unbounded polling loop")
	bounded := flag.Bool("bounded", false, "always use the bounded polling loop")
	check := flag.Bool("check", false, "fail unless every measurement is valid and plausible")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}
	if err := validate(*n, *interval, *legacy, *bounded); err != nil {
		return err
	}
	if *verbose {
		logger.ChangePackageLogLevel("main", logger.DebugLevel)
		logger.ChangePackageLogLevel("dht11", logger.DebugLevel)
	}

	if _, err := host.Init(); err != nil {
		return err
	}
	p := gpioreg.ByName(*pin)
	if p == nil {
		return fmt.Errorf("unknown pin %q", *pin)
	}
	opts := dht11.DefaultOpts
	switch {
	case *legacy:
		opts.Policy = dht11.Legacy.Policy()
	case *bounded:
		opts.Policy = dht11.Modern.Policy()
	}
	dev, err := dht11.New(p, &opts)
	if err != nil {
		return err
	}
	defer dev.Halt()
	lg.Debugf("using %s", dev)

	term := readout.NewTerminal(nil)
	defer term.Halt()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	defer close(done)
	signals := []os.Signal{os.Interrupt}
	if shell.IsLinuxMacOSFreeBSD() {
		signals = append(signals, syscall.SIGTERM)
	}
	shell.CloseContextOnSignals(cancel, done, signals...)

	failed := 0
	for i := 0; *n == 0 || i < *n; i++ {
		if i != 0 {
			select {
			case <-ctx.Done():
				lg.Debug("interrupted")
				return checkFailures(*check, failed)
			case <-time.After(*interval):
			}
		}
		dev.Acquire()
		r := dev.Reading()
		if err := dev.Err(); err != nil {
			lg.Warningf("%s: %v", dev, err)
			failed++
		} else if *check {
			if err := checkRanges(r); err != nil {
				lg.Warning(err)
				failed++
			}
		}
		if err := term.Show(r, kinds...); err != nil {
			return err
		}
	}
	return checkFailures(*check, failed)
}

func checkFailures(check bool, failed int) error {
	if check && failed != 0 {
		return fmt.Errorf("%d measurement(s) failed", failed)
	}
	return nil
}

func main() {
	err := mainImpl()
	logger.FinalizeLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dht11: %s.\n", err)
		os.Exit(1)
	}
}
