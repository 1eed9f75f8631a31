// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"io"
	"strings"
)

// Half block characters indexed by dark top << 1 | dark bottom.
// Dark modules are blank, for terminals with a dark background.
var halfBlocks = [4]string{"█", "▀", "▄", " "}

// String returns the code as lines of Unicode half blocks, two rows
// of modules per line, with the quiet zone.  Light modules are drawn
// as blocks unless c.Reverse is set.  c.Scale and c.Palette are
// ignored.
func (c *Code) String() string {
	var b strings.Builder
	bord := c.Border
	rev := 0
	if c.Reverse {
		rev = 3
	}
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			n := 0
			if c.Black(x, y) {
				n = 2
			}
			if c.Black(x, y+1) {
				n++
			}
			b.WriteString(halfBlocks[n^rev])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// EncodeText writes the code to w as text, two characters per module,
// dark modules as dark and light as light unless c.Reverse is set.
func (c *Code) EncodeText(w io.Writer, dark, light byte) error {
	if !c.isValid() {
		return ErrArgs
	}
	if c.Reverse {
		dark, light = light, dark
	}
	bord := c.Border
	pix := c.Size + 2*bord
	b := make([]byte, 0, (pix*2+1)*pix)
	for y := -bord; y < c.Size+bord; y++ {
		for x := -bord; x < c.Size+bord; x++ {
			p := light
			if c.Black(x, y) {
				p = dark
			}
			b = append(b, p, p)
		}
		b = append(b, '\n')
	}
	_, err := w.Write(b)
	return err
}
