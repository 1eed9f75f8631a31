// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

const (
	formatPoly = 0b101_0011_0111      // x¹⁰+x⁸+x⁵+x⁴+x²+x+1
	formatMask = 0b101_0100_0001_0010 // XORed into format information
	FormatBits = 15
)

// nbit returns the number of significant bits in p.
func nbit(p uint32) int {
	n := 0
	for ; p != 0; p >>= 1 {
		n++
	}
	return n
}

// BCH returns the 10 bit BCH(15,5) parity of the 5 bit payload: the
// remainder of payload·x¹⁰ divided by the generator polynomial over
// GF(2).
func BCH(payload uint16) uint16 {
	return polyRem(uint32(payload&0x1f) << 10)
}

// polyRem divides f by the format generator polynomial by repeatedly
// XORing the generator aligned to the leading bit of f.
func polyRem(f uint32) uint16 {
	ng := nbit(formatPoly)
	for n := nbit(f); n >= ng; n = nbit(f) {
		f ^= formatPoly << (n - ng)
	}
	return uint16(f)
}

// FormatInfo returns the 15 bit format information for level l and
// mask m: level code, mask number, BCH parity, XORed with the format
// mask.
func FormatInfo(l Level, m Mask) uint16 {
	p := l.Code()<<3 | uint16(m&7)
	return (p<<10 | BCH(p)) ^ formatMask
}

// Format bit positions in row 8, for the field most significant bit
// first (formatCols) and for the reversed field in the transposed
// matrix (formatRows).
var (
	formatCols = [FormatBits]int{0, 1, 2, 3, 4, 5, 7, 13, 14, 15, 16, 17, 18, 19, 20}
	formatRows = [FormatBits]int{0, 1, 2, 3, 4, 5, 7, 8, 14, 15, 16, 17, 18, 19, 20}
)

// writeFormat writes the bits of fi, most significant first, to row 8
// at the columns listed in cols.
func (m *Matrix) writeFormat(fi uint16, cols *[FormatBits]int) {
	for i, x := range cols {
		m[8][x] = bit(fi >> (FormatBits - 1 - i) & 1)
	}
}

// reverse15 returns fi with the order of its 15 bits reversed.
func reverse15(fi uint16) uint16 {
	var r uint16
	for i := 0; i < FormatBits; i++ {
		r = r<<1 | fi&1
		fi >>= 1
	}
	return r
}

// EmbedFormat writes the format information fi into the matrix twice.
// The horizontal copy occupies row 8 left and right of the finders.
// The vertical copy is written the same way into the transposed
// matrix, bit reversed, as it is read upwards along column 8.
func (m *Matrix) EmbedFormat(fi uint16) {
	m.writeFormat(fi, &formatCols)
	m.Transpose()
	m.writeFormat(reverse15(fi), &formatRows)
	m.Transpose()
}

// Format returns the two copies of the format information read from
// the matrix.  The first surrounds the top left finder; the second is
// split between the top right and bottom left finders.
func (m *Matrix) Format() (uint16, uint16) {
	var a, b uint16
	// Copy one: column 8 upwards from row 8, then row 8 leftwards
	// from column 7, least significant bit first.
	for i := 0; i < FormatBits; i++ {
		var v Module
		switch {
		case i < 6:
			v = m[i][8]
		case i < 8:
			v = m[i+1][8]
		case i == 8:
			v = m[8][7]
		default:
			v = m[8][14-i]
		}
		a |= uint16(v.Bit()) << i
	}
	// Copy two: row 8 leftwards from column 20, then column 8
	// downwards from row 14.
	for i := 0; i < FormatBits; i++ {
		var v Module
		if i < 8 {
			v = m[8][Size-1-i]
		} else {
			v = m[Size-15+i][8]
		}
		b |= uint16(v.Bit()) << i
	}
	return a, b
}
