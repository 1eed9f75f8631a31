// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois Field GF(256)
// and Reed-Solomon check byte encoding.
package gf256 // import "github.com/unixdj/qrv1/gf256"

import (
	"errors"
	"strconv"
)

// ErrBlockLength is returned when a Reed-Solomon block, data and
// check bytes together, does not fit in the field.
var ErrBlockLength = errors.New("gf256: block too long")

// A Field represents an instance of GF(256) defined by a specific
// polynomial.
type Field struct {
	log [256]byte // log[0] is unused
	exp [510]byte // exp[i+255] == exp[i], saves a modulo in Mul
}

// NewField returns a new field corresponding to the polynomial poly
// and generator α.  The Reed-Solomon encoding in QR codes uses
// polynomial 0x11d with generator 2.
//
// NewField panics if poly is not an irreducible polynomial of degree 8
// or α does not generate the multiplicative group of the field.
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 || reducible(poly) {
		panic("gf256: invalid polynomial: " + strconv.Itoa(poly))
	}
	var f Field
	x := 1
	for i := 0; i < 255; i++ {
		if x == 1 && i != 0 {
			panic("gf256: invalid generator " + strconv.Itoa(α) +
				" for polynomial " + strconv.Itoa(poly))
		}
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		x = mul(x, α, poly)
	}
	f.log[0] = 255
	return &f
}

// nbit returns the number of significant bits in p.
func nbit(p int) int {
	n := 0
	for ; p > 0; p >>= 1 {
		n++
	}
	return n
}

// polyMod returns the remainder of dividing polynomial p by q over GF(2).
func polyMod(p, q int) int {
	nq := nbit(q)
	for np := nbit(p); np >= nq; np = nbit(p) {
		p ^= q << (np - nq)
	}
	return p
}

// mul returns x*y mod poly.
func mul(x, y, poly int) int {
	z := 0
	for ; x > 0; x >>= 1 {
		if x&1 != 0 {
			z ^= y
		}
		if y <<= 1; y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// reducible reports whether p is reducible.  A factor of a reducible
// polynomial of n bits has at most n/2+1 bits.
func reducible(p int) bool {
	lim := 1 << (nbit(p)/2 + 1)
	for q := 2; q < lim; q++ {
		if polyMod(p, q) == 0 {
			return true
		}
	}
	return false
}

// Add returns the sum of x and y in the field.
func (f *Field) Add(x, y byte) byte { return x ^ y }

// Exp returns the result of raising the field generator α to the
// power e.
func (f *Field) Exp(e int) byte {
	if e %= 255; e < 0 {
		e += 255
	}
	return f.exp[e]
}

// Log returns the base-α logarithm of x, or -1 if x is 0.
func (f *Field) Log(x byte) int {
	if x == 0 {
		return -1
	}
	return int(f.log[x])
}

// Inv returns the multiplicative inverse of x, or 0 if x is 0.
func (f *Field) Inv(x byte) byte {
	if x == 0 {
		return 0
	}
	return f.exp[255-int(f.log[x])]
}

// Mul returns the product of x and y in the field.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// An RSEncoder computes Reed-Solomon check bytes over a given field
// using a given number of check bytes.  An RSEncoder holds no mutable
// state and may be used concurrently.
type RSEncoder struct {
	f    *Field
	c    int
	gen  []byte // generator polynomial, highest degree first
	lgen []byte // log of gen[1:], 255 for zero coefficients
}

// gen returns the generator polynomial (x-α⁰)(x-α¹)…(x-αᵉ⁻¹),
// coefficients highest degree first.
func (f *Field) gen(e int) []byte {
	p := make([]byte, 1, e+1)
	p[0] = 1
	for i := 0; i < e; i++ {
		c := f.Exp(i)
		p = append(p, 0)
		for j := len(p) - 1; j > 0; j-- {
			p[j] ^= f.Mul(p[j-1], c)
		}
	}
	return p
}

// NewRSEncoder returns a new Reed-Solomon encoder over the given field
// and number of check bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	if c < 0 || c > 254 {
		panic("gf256: invalid check byte count: " + strconv.Itoa(c))
	}
	gen := f.gen(c)
	lgen := make([]byte, c)
	for i, v := range gen[1:] {
		lgen[i] = 255
		if v != 0 {
			lgen[i] = f.log[v]
		}
	}
	return &RSEncoder{f: f, c: c, gen: gen, lgen: lgen}
}

// Len returns the number of check bytes.
func (rs *RSEncoder) Len() int { return rs.c }

// ECC writes to check the check bytes for data.  The check bytes are
// the remainder of data, padded with Len zeros, divided by the
// generator polynomial.  ECC panics if check is shorter than Len.
func (rs *RSEncoder) ECC(data, check []byte) {
	if len(check) < rs.c {
		panic("gf256: invalid check byte length")
	}
	check = check[:rs.c]
	clear(check)
	if rs.c == 0 {
		return
	}
	// check is a shift register holding the running remainder.
	f := rs.f
	for _, d := range data {
		c := d ^ check[0]
		copy(check, check[1:])
		check[len(check)-1] = 0
		if c == 0 {
			continue
		}
		exp := f.exp[f.log[c]:]
		for j, lg := range rs.lgen {
			if lg != 255 {
				check[j] ^= exp[lg]
			}
		}
	}
}

// Append returns data followed by its check bytes.  The result never
// shares memory with data.  Append returns ErrBlockLength if the
// block is longer than 255 bytes.
func (rs *RSEncoder) Append(data []byte) ([]byte, error) {
	n := len(data) + rs.c
	if n > 255 {
		return nil, ErrBlockLength
	}
	b := make([]byte, n)
	copy(b, data)
	rs.ECC(data, b[len(data):])
	return b, nil
}
