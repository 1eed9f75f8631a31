// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
)

// Paletted returns a two colour paletted image displaying the code.
// Index 0 is light, 1 is dark.
func (c *Code) Paletted() *image.Paletted {
	ci := &codeImage{c, c.colours()}
	r := ci.Bounds()
	img := image.NewPaletted(r, color.Palette(ci.pal[:]))
	for y := 0; y < r.Dy(); y++ {
		row := img.Pix[y*img.Stride:]
		for x := range row[:r.Dx()] {
			row[x] = ci.module(x, y)
		}
	}
	return img
}

// EncodePNG writes a PNG image displaying the code to w.  The image
// is encoded with a two colour palette at bit depth 1.
func (c *Code) EncodePNG(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	e := png.Encoder{CompressionLevel: png.BestCompression}
	return e.Encode(w, c.Paletted())
}

// PNG returns a PNG image displaying the code, or nil if c is invalid.
func (c *Code) PNG() []byte {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return nil
	}
	return b.Bytes()
}
