// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos

// Location is a single point in source text.
//
// It stores both the bytewise position and the logical row and column
// numbers, all 0 based. The three values are redundant; keeping them
// consistent with the text the Location points into is the producer's
// responsibility, not enforced here.
type Location struct {
	Pos int // byte offset from the start of the source
	Row int // line number
	Col int // column number on the line, counted in characters (not bytes)
}

// NewLocation returns a Location with the given byte offset, row, and
// column.
func NewLocation(pos, row, col int) Location {
	return Location{Pos: pos, Row: row, Col: col}
}

// NewZeroLocation returns the Location of the first byte of a source (Pos,
// Row, and Col all zero). It is the zero value of Location.
func NewZeroLocation() Location {
	return Location{}
}

// Min returns whichever of l and other has the smaller byte offset. Rows
// and columns ride along but do not participate in the comparison. Ties
// resolve to l.
func (l Location) Min(other Location) Location {
	if l.Pos <= other.Pos {
		return l
	}
	return other
}

// Max returns whichever of l and other has the larger byte offset. Ties
// resolve to l.
func (l Location) Max(other Location) Location {
	if l.Pos >= other.Pos {
		return l
	}
	return other
}
