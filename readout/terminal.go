// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package readout

import (
	"bytes"
	"errors"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"

	"github.com/GermanBionicSystems/dhtdevices/dht11"
)

// TerminalOpts represents the options available for a Terminal.
type TerminalOpts struct {
	// Width is the length of the color bar in blocks. Default is 20.
	Width int
	// Palette defaults to ansi256.Default.
	Palette *ansi256.Palette
	// Out defaults to a colorable stdout.
	Out io.Writer

	_ struct{}
}

// Terminal prints readings on a console, one line per value, each followed
// by a color bar scaled to the sensor's range.
type Terminal struct {
	w       io.Writer
	width   int
	palette ansi256.Palette

	buf bytes.Buffer
}

// NewTerminal returns a Terminal. The opts can be nil.
func NewTerminal(opts *TerminalOpts) *Terminal {
	if opts == nil {
		opts = &TerminalOpts{}
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	t := &Terminal{
		w:       opts.Out,
		width:   opts.Width,
		palette: *p,
	}
	if t.w == nil {
		t.w = colorable.NewColorableStdout()
	}
	if t.width <= 0 {
		t.width = 20
	}
	return t
}

func (t *Terminal) String() string {
	return "Terminal"
}

// Halt resets the console colors.
func (t *Terminal) Halt() error {
	_, err := t.w.Write([]byte("\033[0m"))
	return err
}

// Show writes one line per kind.
func (t *Terminal) Show(r dht11.Reading, kinds ...dht11.Kind) error {
	if len(kinds) == 0 {
		return errors.New("readout: no kind to show")
	}
	t.buf.Reset()
	for _, k := range kinds {
		_, _ = t.buf.WriteString("\r\033[0m")
		_, _ = t.buf.WriteString(Format(r, k))
		_, _ = t.buf.WriteString(" ")
		f := scale(r, k)
		c := barColor(k, f)
		n := int(f*float64(t.width) + 0.5)
		for i := 0; i < n; i++ {
			_, _ = io.WriteString(&t.buf, t.palette.Block(c))
		}
		_, _ = t.buf.WriteString("\033[0m\n")
	}
	_, err := t.buf.WriteTo(t.w)
	return err
}

// barColor goes from blue to red for temperatures and from white to blue
// for humidity.
func barColor(k dht11.Kind, f float64) color.NRGBA {
	v := byte(f * 255)
	if k == dht11.Humidity {
		return color.NRGBA{255 - v, 255 - v, 255, 255}
	}
	return color.NRGBA{v, 0, 255 - v, 255}
}
