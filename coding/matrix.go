// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strings"

// A Module is one cell of the symbol matrix.
type Module byte

const (
	Light          Module = iota // light module
	Dark                         // dark module
	FormatReserved               // reserved for format information
	DataSlot                     // reserved for data and check bits
)

// Bit returns 1 for a dark module and 0 otherwise.
func (v Module) Bit() byte {
	if v == Dark {
		return 1
	}
	return 0
}

func (v Module) String() string {
	if v <= DataSlot {
		return ".#f?"[v : v+1]
	}
	return "!"
}

// bit returns Dark for 1 and Light for 0.
func bit[T byte | uint16](b T) Module { return Module(b & 1) }

// A Matrix is the module grid of a symbol, addressed [row][col] from
// the top left corner.
type Matrix [Size][Size]Module

// template is the function pattern of a version 1 symbol.
var template = vplan()

// timingPos is the row of the horizontal and the column of the
// vertical timing pattern.
const timingPos = 6

// vplan returns the version 1 function pattern: finder patterns with
// separators, timing patterns, the dark module, and reserved format
// modules.  All other modules are data slots.
func vplan() *Matrix {
	var m Matrix
	for y := range m {
		for x := range m[y] {
			m[y][x] = DataSlot
		}
	}
	// Timing markers (overwritten by boxes).
	for i := 0; i < Size; i++ {
		t := bit(byte(i+1) & 1)
		m[timingPos][i] = t
		m[i][timingPos] = t
	}
	// Position boxes with separators.
	// Mask 8x8 modules at top left, top right and bottom left.
	for _, p := range [3][2]int{{0, 0}, {0, Size - 7}, {Size - 7, 0}} {
		for y := -1; y <= 7; y++ {
			for x := -1; x <= 7; x++ {
				yy, xx := p[0]+y, p[1]+x
				if yy < 0 || yy >= Size || xx < 0 || xx >= Size {
					continue
				}
				// Distance from the centre: 2 is the light
				// ring, 4 the separator.
				v := Dark
				if d := max(abs(y-3), abs(x-3)); d&1 == 0 && d != 0 {
					v = Light
				}
				m[yy][xx] = v
			}
		}
	}
	// Format information.
	for i := 0; i < FormatBits; i++ {
		m[8][formatCols[i]] = FormatReserved
		m[formatRows[i]][8] = FormatReserved
	}
	// One lonely dark module.
	m[Size-8][8] = Dark
	return &m
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Template returns the function pattern of a version 1 symbol, with
// data and format modules unset.
func Template() Matrix { return *template }

// Count returns the number of modules of kind v in m.
func (m *Matrix) Count(v Module) int {
	n := 0
	for y := range m {
		for _, c := range m[y] {
			if c == v {
				n++
			}
		}
	}
	return n
}

// Dark reports whether the module at row y, column x is dark.
// Modules outside the matrix are light.
func (m *Matrix) Dark(y, x int) bool {
	return 0 <= y && y < Size && 0 <= x && x < Size && m[y][x] == Dark
}

// Transpose reflects m across its main diagonal.
func (m *Matrix) Transpose() {
	for y := 1; y < Size; y++ {
		for x := 0; x < y; x++ {
			m[y][x], m[x][y] = m[x][y], m[y][x]
		}
	}
}

// String returns m as lines of Module characters.
func (m *Matrix) String() string {
	var b strings.Builder
	b.Grow(Size * (Size + 1))
	for y := range m {
		for _, v := range m[y] {
			b.WriteString(v.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
