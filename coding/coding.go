// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements the construction of version 1 QR symbols
// holding alphanumeric text at error correction level H.
//
// The pipeline runs in order: EncodeAlphanumeric and Frame assemble
// the data codewords, a Corrector appends the check codewords, Place
// lays the codeword bits into a Matrix in zigzag order, Mask flips data
// modules and EmbedFormat writes the format information.  Encode runs
// all of them.
package coding // import "github.com/unixdj/qrv1/coding"

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/unixdj/qrv1/gf256"
)

var (
	ErrInvalidCharacter = errors.New("qr: invalid character")
	ErrCapacityExceeded = errors.New("qr: text too long")
	ErrLayoutMismatch   = errors.New("qr: layout mismatch")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// Symbol parameters.  Only version 1 at level H is supported.
const (
	Size           = 21 // modules on a side
	DataCodewords  = 9  // data codewords at level H
	CheckCodewords = 17 // error correction codewords at level H
	Codewords      = DataCodewords + CheckCodewords

	DataBits = DataCodewords * 8 // data capacity in bits
	SlotBits = Codewords * 8     // data modules in the matrix

	ModeIndicator = 0b0010 // alphanumeric mode
	ModeBits      = 4      // length of mode indicator
	CountBits     = 9      // length of character count
	TermBits      = 4      // length of terminator

	// MaxChars is the longest text that fits.
	MaxChars = (DataBits - ModeBits - CountBits) * 2 / 11
)

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// Code returns the two bit level indicator used in format
// information: L=01, M=00, Q=11, H=10.
func (l Level) Code() uint16 { return uint16(l&3) ^ 1 }

// CharError reports a character not encodable in alphanumeric mode.
type CharError struct {
	Char rune // offending character
	Pos  int  // byte offset in the text
}

func (e *CharError) Error() string {
	return fmt.Sprintf("qr: non-alphanumeric character %q at offset %d",
		e.Char, e.Pos)
}

func (e *CharError) Is(target error) bool { return target == ErrInvalidCharacter }

// CapacityError reports text too long for the symbol.
type CapacityError struct {
	Chars int // length of the text
	Bits  int // encoded length in bits, excluding terminator
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d characters (%d bits) into %d-bit code",
		e.Chars, e.Bits, DataBits)
}

func (e *CapacityError) Is(target error) bool { return target == ErrCapacityExceeded }

// LayoutError reports a mismatch between the number of bits to place
// and the number of data modules.  It indicates a bug, not bad input.
type LayoutError struct {
	Bits  int // bits supplied
	Slots int // data modules available
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("qr: internal error: %d bits for %d data modules",
		e.Bits, e.Slots)
}

func (e *LayoutError) Is(target error) bool { return target == ErrLayoutMismatch }
