// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes short alphanumeric strings as version 1 QR codes at
error correction level H.

Text may hold up to 10 characters from the set 0-9, A-Z, space and
$%*+-./: and is always encoded with mask pattern 3.  Package coding
implements the symbol construction.
*/
package qr // import "github.com/unixdj/qrv1"

import (
	"errors"
	"image"
	"image/color"

	"github.com/unixdj/qrv1/coding"
)

var ErrArgs = errors.New("qr: invalid arguments")

// Defaults set by Encode.
const (
	DefaultScale  = 8 // image pixels per module
	DefaultBorder = 4 // quiet zone modules
)

// A Code is a square pixel grid.  Image, EncodePBM, EncodePNG and
// String render it with a quiet zone.
type Code struct {
	Bitmap  []byte          // 1 is dark, 0 is light
	Size    int             // number of modules on a side
	Stride  int             // number of bytes per row
	Scale   int             // number of image pixels per module
	Border  int             // quiet zone width in modules
	Reverse bool            // swap light and dark colours
	Palette *[2]color.Color // light and dark colours; nil is white and black
}

// Encode returns the QR code for text.
func Encode(text string) (*Code, error) {
	m, err := coding.Encode(text)
	if err != nil {
		return nil, err
	}
	return FromMatrix(m), nil
}

// FromMatrix returns a Code with the modules of m, default scale and
// border.  Modules other than dark are light.
func FromMatrix(m *coding.Matrix) *Code {
	siz := len(m)
	stride := (siz + 7) >> 3
	c := &Code{
		Bitmap: make([]byte, siz*stride),
		Size:   siz,
		Stride: stride,
		Scale:  DefaultScale,
		Border: DefaultBorder,
	}
	for y := range m {
		row := c.Bitmap[y*stride:]
		for x, v := range m[y] {
			row[x>>3] |= v.Bit() << (7 &^ x)
		}
	}
	return c
}

// Black reports whether the module at (x,y) is dark.  Modules outside
// the code, including the quiet zone, are light.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}

// isValid reports whether c can be rendered.
func (c *Code) isValid() bool {
	return c.Size > 0 && c.Stride == (c.Size+7)>>3 &&
		len(c.Bitmap) == c.Size*c.Stride && c.Scale > 0 && c.Border >= 0
}

// colours returns the light and dark colours of c.
func (c *Code) colours() [2]color.Color {
	p := [2]color.Color{color.Gray{0xff}, color.Gray{0x00}}
	if c.Palette != nil {
		p = *c.Palette
	}
	if c.Reverse {
		p[0], p[1] = p[1], p[0]
	}
	return p
}

// Image returns an Image displaying the code, quiet zone included.
func (c *Code) Image() image.Image {
	return &codeImage{c, c.colours()}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
	pal [2]color.Color
}

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

// module returns the colour index of the pixel at (x, y).
func (c *codeImage) module(x, y int) uint8 {
	if c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) {
		return 1
	}
	return 0
}

func (c *codeImage) At(x, y int) color.Color {
	return c.pal[c.module(x, y)]
}

func (c *codeImage) ColorModel() color.Model {
	return color.Palette(c.pal[:])
}
