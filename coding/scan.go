// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Scan iterates over module positions in zigzag scan order.  The scan
// runs in two module wide strips from the right edge of the matrix,
// right column before left, upwards in the first strip and alternating
// direction from strip to strip.  The vertical timing column is
// skipped.  Every position of every strip is visited, whether or not
// it is a data slot.
type Scan struct {
	x, y int  // next position
	dy   int  // -1 upwards, 1 downwards
	left bool // x is the left column of the strip
}

// NewScan returns a Scan positioned at the bottom right corner.
func NewScan() *Scan {
	s := new(Scan)
	s.Reset()
	return s
}

// Reset restarts the scan.
func (s *Scan) Reset() { *s = Scan{x: Size - 1, y: Size - 1, dy: -1} }

// Next returns the next position and true, or false when the scan is
// finished.
func (s *Scan) Next() (row, col int, ok bool) {
	if s.x < 0 {
		return 0, 0, false
	}
	row, col = s.y, s.x
	if !s.left {
		s.x--
		s.left = true
		return row, col, true
	}
	s.left = false
	if y := s.y + s.dy; 0 <= y && y < Size {
		s.x++
		s.y = y
		return row, col, true
	}
	// turn around into the next strip
	s.dy = -s.dy
	if s.x--; s.x == timingPos {
		s.x--
	}
	return row, col, true
}

// Place writes the bits of s to the data slots of m in zigzag scan
// order.  The number of bits must equal the number of data slots,
// otherwise m is unmodified and the error is a *LayoutError.
func (m *Matrix) Place(s BitStream) error {
	if n, slots := s.Len(), m.Count(DataSlot); n != slots {
		return &LayoutError{Bits: n, Slots: slots}
	}
	for sc := NewScan(); ; {
		y, x, ok := sc.Next()
		if !ok {
			return nil
		}
		if m[y][x] == DataSlot {
			m[y][x] = bit(s.Next())
		}
	}
}
