// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 8, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

// IsAlphanumeric reports whether r is encodable in alphanumeric mode.
func IsAlphanumeric(r rune) bool {
	return uint32(r-' ') < 64 && alphamask>>(r-' ')&1 != 0
}

// AlphanumericBits returns the encoded length in bits of n characters.
func AlphanumericBits(n int) int { return (11*n + 1) / 2 }

// validAlphanumeric returns a CharError for the first character of s
// not encodable in alphanumeric mode, or nil.
func validAlphanumeric(s string) error {
	for i, r := range s {
		if !IsAlphanumeric(r) {
			return &CharError{Char: r, Pos: i}
		}
	}
	return nil
}

// EncodeAlphanumeric appends s encoded in alphanumeric mode to b: 11
// bits per pair of characters, 6 bits for the odd last one.  If s has
// characters outside the alphanumeric set, b is not modified and the
// returned error is a *CharError.
func EncodeAlphanumeric(b *Bits, s string) error {
	if err := validAlphanumeric(s); err != nil {
		return err
	}
	for ; len(s) >= 2; s = s[2:] {
		b.Write(uint32(alpha[s[0]&0x3f])*45+uint32(alpha[s[1]&0x3f]), 11)
	}
	if len(s) != 0 {
		b.Write(uint32(alpha[s[0]&0x3f]), 6)
	}
	return nil
}
