// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package readout

import (
	"fmt"
	"image"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3/display"

	"github.com/GermanBionicSystems/dhtdevices/dht11"
)

var (
	fontOnce sync.Once
	goFont   *truetype.Font
	fontErr  error
)

func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		goFont, fontErr = truetype.Parse(goregular.TTF)
	})
	return goFont, fontErr
}

// Render draws the value selected by k, black on white, centered in an
// image the size of bounds.
func Render(r dht11.Reading, k dht11.Kind, bounds image.Rectangle) (image.Image, error) {
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("readout: empty bounds %s", bounds)
	}
	f, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("readout: %w", err)
	}
	// Faces are not safe for concurrent use.
	face := truetype.NewFace(f, &truetype.Options{Size: 0.6 * float64(h)})
	defer face.Close()

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)
	dc.SetFontFace(face)
	dc.DrawStringAnchored(Format(r, k), float64(w)/2, float64(h)/2, 0.5, 0.5)
	return dc.Image(), nil
}

// Show renders the value selected by k over the whole of d.
func Show(d display.Drawer, r dht11.Reading, k dht11.Kind) error {
	b := d.Bounds()
	img, err := Render(r, k, b)
	if err != nil {
		return err
	}
	return d.Draw(b, img, image.Point{})
}
