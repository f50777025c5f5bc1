// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dht11

import (
	"strings"

	"periph.io/x/host/v3/distro"
)

// Platform identifies the hardware generation the driver runs on. It is
// queried once per acquisition.
type Platform interface {
	HardwareVersion() string
}

// FixedPlatform reports a constant hardware version.
type FixedPlatform string

// HardwareVersion implements Platform.
func (f FixedPlatform) HardwareVersion() string {
	return string(f)
}

// HostPlatform derives the hardware version from the device tree model of
// the host.
type HostPlatform struct{}

// HardwareVersion implements Platform.
func (HostPlatform) HardwareVersion() string {
	return modelVersion(distro.DTModel())
}

// modelVersion maps a device tree model to a board generation. Boards other
// than a Raspberry Pi are reported as generation 2.
func modelVersion(model string) string {
	model = strings.TrimRight(model, "\x00 \n")
	const rpiPrefix = "Raspberry Pi "
	if !strings.HasPrefix(model, rpiPrefix) {
		return "2"
	}
	rest := strings.TrimPrefix(model, rpiPrefix)
	rest = strings.TrimPrefix(rest, "Compute Module ")
	if strings.HasPrefix(rest, "Zero 2") {
		// BCM2710, same core as the Pi 3.
		return "3"
	}
	if rest != "" && rest[0] >= '1' && rest[0] <= '9' {
		return rest[:1]
	}
	// Model A/B, A+/B+, Zero and the first Compute Module are all BCM2835.
	return "1"
}

var _ Platform = HostPlatform{}
var _ Platform = FixedPlatform("")
