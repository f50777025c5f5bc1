// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/GermanBionicSystems/dhtdevices/dht11"
	"github.com/GermanBionicSystems/dhtdevices/readout"
)

// plausible is the range expected indoors from a working sensor, per kind.
var plausible = map[dht11.Kind][2]float64{
	dht11.TemperatureCelsius:    {0, 50},
	dht11.TemperatureFahrenheit: {32, 122},
	dht11.Humidity:              {20, 90},
}

// checkRanges returns an error naming every value of r outside its
// plausible range.
func checkRanges(r dht11.Reading) error {
	var bad []string
	for _, k := range allKinds {
		lim := plausible[k]
		if v := r.Value(k); v < lim[0] || v > lim[1] {
			bad = append(bad, fmt.Sprintf("%s not in [%g, %g]", readout.Format(r, k), lim[0], lim[1]))
		}
	}
	if len(bad) != 0 {
		return fmt.Errorf("implausible reading: %s", strings.Join(bad, ", "))
	}
	return nil
}
