// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	scale := c.Scale
	length := scale * (c.Size + c.Border*2)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	// In PBM 1 is black.
	var white byte
	if c.Reverse {
		white = 0xff
	}
	row := make([]byte, (length+7)/8)
	quiet := func() error {
		for i := range row {
			row[i] = white
		}
		for i := 0; i < scale*c.Border; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
		return nil
	}
	if err := quiet(); err != nil {
		return err
	}
	for y := 0; y < c.Size; y++ {
		pbmRow(row, c, y, white)
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	if err := quiet(); err != nil {
		return err
	}
	return b.Flush()
}

// pbmRow encodes row y of c, quiet zone included, as PBM pixels.
// Padding bits at the end of the row are zero.
func pbmRow(row []byte, c *Code, y int, white byte) {
	clear(row)
	scale := c.Scale
	length := scale * (c.Size + c.Border*2)
	for px := 0; px < length; px++ {
		v := white
		if c.Black(px/scale-c.Border, y) {
			v = ^white
		}
		row[px>>3] |= v & (0x80 >> (px & 7))
	}
}
