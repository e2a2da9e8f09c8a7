// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos

import (
	"fmt"
)

// Span is a region of source code: a pair of Locations forming a half-open
// range [Start, End), plus the name of the source the region appears in.
//
// F is the file name representation. Most code uses one of the two named
// flavors, StringSpan or SharedSpan, but any comparable value that
// identifies a source works.
type Span[F comparable] struct {
	// FileName names the source of this region. Often a file name, but can
	// be an arbitrary marker like "stdin".
	FileName F
	// Start is the inclusive starting Location.
	Start Location
	// End is the exclusive ending Location.
	End Location
}

var _ fmt.Stringer = Span[string]{}

// NewSpan returns a Span with the given file name and boundary locations,
// exactly as given. Ordering of start and end is not checked; constructing
// an inverted span is the caller's mistake, not detected here.
func NewSpan[F comparable](fileName F, start, end Location) Span[F] {
	return Span[F]{FileName: fileName, Start: start, End: end}
}

// NewEmptySpan returns a zero-width Span at loc, designating a single point
// rather than a range.
func NewEmptySpan[F comparable](fileName F, loc Location) Span[F] {
	return NewSpan(fileName, loc, loc)
}

// NewZeroSpan returns a zero-width Span pointing at the first byte of the
// named source.
func NewZeroSpan[F comparable](fileName F) Span[F] {
	return NewSpan(fileName, Location{}, Location{})
}

// ExtendToCover returns the minimal Span containing both s and other:
// Start is the earlier of the two starts, End the later of the two ends.
// Folding child spans through it is how a parser widens a syntax node's
// span to encompass all of its children, and the covered range comes out
// the same regardless of fold order.
//
// The file name is always taken from s; other's is discarded. Both spans
// must refer to the same source -- not checked.
func (s Span[F]) ExtendToCover(other Span[F]) Span[F] {
	return Span[F]{
		FileName: s.FileName,
		Start:    s.Start.Min(other.Start),
		End:      s.End.Max(other.End),
	}
}

// String renders s the way error messages and tooling expect:
// "file:line,col" for a zero-width span, "file:line,col-col" for a range
// within one line, and "file:line,col-line,col" for a range across lines.
// Displayed line and column numbers are 1 based; the file name renders in
// its own textual form.
func (s Span[F]) String() string {
	if s.Start.Row == s.End.Row {
		if s.Start.Col == s.End.Col {
			return fmt.Sprintf("%v:%d,%d", s.FileName, s.Start.Row+1, s.Start.Col+1)
		}
		return fmt.Sprintf("%v:%d,%d-%d", s.FileName, s.Start.Row+1, s.Start.Col+1, s.End.Col+1)
	}
	return fmt.Sprintf("%v:%d,%d-%d,%d", s.FileName,
		s.Start.Row+1, s.Start.Col+1, s.End.Row+1, s.End.Col+1)
}

// WithFileName returns a copy of s identified by fileName, which may use a
// different file name representation than s does. Start and End carry over
// verbatim.
func WithFileName[F, T comparable](s Span[F], fileName T) Span[T] {
	return Span[T]{FileName: fileName, Start: s.Start, End: s.End}
}
