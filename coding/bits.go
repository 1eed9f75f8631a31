// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strings"

// Bits is a string of bits, appended most significant bit first.
// Leading zeros are significant: the length is tracked exactly.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns empty Bits with room for all codewords of a symbol.
func NewBits() *Bits {
	return &Bits{b: make([]byte, 0, Codewords)}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the length of b in bits.
func (b *Bits) Bits() int { return b.nbit }

// Bytes returns the bytes of b.  It panics if b does not end on a byte
// boundary.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the nbit low bits of v to b.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// Stream returns a BitStream reading b.
func (b *Bits) Stream() BitStream { return BitStream{b: b.b, n: b.nbit} }

// String returns b as a string of '0' and '1'.
func (b *Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.nbit)
	for s := b.Stream(); s.Len() > 0; {
		sb.WriteByte('0' + s.Next())
	}
	return sb.String()
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	n   int // length in bits
	pos int
}

// NewBitStream returns a BitStream reading all bits of b.
func NewBitStream(b []byte) BitStream { return BitStream{b: b, n: len(b) * 8} }

// Len returns the number of unread bits.
func (s *BitStream) Len() int { return s.n - s.pos }

// Next returns the next bit from s as 0 or 1.
// Past the end Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if s.pos < s.n {
		b = s.b[s.pos>>3] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b
}
