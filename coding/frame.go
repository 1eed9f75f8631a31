// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Pad codewords, alternating after the terminator.
const (
	Pad0 = 0xec // 11101100
	Pad1 = 0x11 // 00010001
)

// Header returns the segment for text: mode indicator, character
// count and data, without terminator or padding.  The error is a
// *CharError or a *CapacityError.
func Header(text string) (*Bits, error) {
	if err := validAlphanumeric(text); err != nil {
		return nil, err
	}
	if n := ModeBits + CountBits + AlphanumericBits(len(text)); n > DataBits {
		return nil, &CapacityError{Chars: len(text), Bits: n}
	}
	b := NewBits()
	b.Write(ModeIndicator, ModeBits)
	b.Write(uint32(len(text)), CountBits)
	EncodeAlphanumeric(b, text)
	return b, nil
}

// Frame returns the data codewords for text: the segment, terminator,
// zero bits to the codeword boundary and alternating pad codewords up
// to the data capacity.
func Frame(text string) (*Bits, error) {
	b, err := Header(text)
	if err != nil {
		return nil, err
	}
	b.PadTo(TermBits, DataBits)
	return b, nil
}

// PadTo adds up to t zero terminator bits to b, zero bits to the byte
// boundary, and pad codewords until b is n bits long.  PadTo panics if
// b is already longer than n bits or n is not a multiple of 8.
func (b *Bits) PadTo(t, n int) {
	if b.nbit > n || n&7 != 0 {
		panic("qr: too much data")
	}
	b.Write(0, min(t, n-b.nbit))
	b.Write(0, -b.nbit&7)
	for i := 0; b.nbit < n; i++ {
		b.Write(uint32([2]byte{Pad0, Pad1}[i&1]), 8)
	}
}
