// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos_test

import (
	"fmt"
	"testing"

	"carvel.dev/srcspan/pkg/filepos"
	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanNewKeepsPartsVerbatim(t *testing.T) {
	start := filepos.NewLocation(8, 2, 6)
	end := filepos.NewLocation(5, 2, 3)

	// deliberately inverted: construction performs no ordering checks
	span := filepos.NewSpan("a.js", start, end)

	assert.Equal(t, "a.js", span.FileName)
	assert.Equal(t, start, span.Start)
	assert.Equal(t, end, span.End)
}

func TestSpanEmptyDesignatesSinglePoint(t *testing.T) {
	loc := filepos.NewLocation(5, 2, 3)

	span := filepos.NewEmptySpan("a.js", loc)

	assert.Equal(t, loc, span.Start)
	assert.Equal(t, loc, span.End)
	assert.Equal(t, span.Start, span.End)
}

func TestSpanZeroPointsAtFirstByte(t *testing.T) {
	span := filepos.NewZeroSpan("a.js")

	assert.Equal(t, filepos.NewZeroLocation(), span.Start)
	assert.Equal(t, filepos.NewZeroLocation(), span.End)
	assert.Equal(t, "a.js:1,1", span.String())
}

func TestSpanExtendToCoverSelfIsIdentity(t *testing.T) {
	span := filepos.NewSpan("a.js",
		filepos.NewLocation(5, 2, 3), filepos.NewLocation(8, 2, 6))

	assert.True(t, span == span.ExtendToCover(span))
}

func TestSpanExtendToCoverComputesCoveringRange(t *testing.T) {
	tests := []struct {
		description string
		left        filepos.StringSpan
		right       filepos.StringSpan
		start, end  filepos.Location
	}{
		{
			description: "overlapping ranges",
			left:        span("a.js", loc(5, 2, 3), loc(12, 3, 1)),
			right:       span("a.js", loc(9, 2, 7), loc(20, 4, 1)),
			start:       loc(5, 2, 3),
			end:         loc(20, 4, 1),
		},
		{
			description: "disjoint ranges",
			left:        span("a.js", loc(0, 0, 0), loc(4, 0, 4)),
			right:       span("a.js", loc(10, 1, 2), loc(15, 1, 7)),
			start:       loc(0, 0, 0),
			end:         loc(15, 1, 7),
		},
		{
			description: "second range inside first",
			left:        span("a.js", loc(0, 0, 0), loc(30, 5, 2)),
			right:       span("a.js", loc(10, 1, 2), loc(15, 1, 7)),
			start:       loc(0, 0, 0),
			end:         loc(30, 5, 2),
		},
		{
			description: "second range precedes first",
			left:        span("a.js", loc(10, 1, 2), loc(15, 1, 7)),
			right:       span("a.js", loc(0, 0, 0), loc(4, 0, 4)),
			start:       loc(0, 0, 0),
			end:         loc(15, 1, 7),
		},
	}

	for _, tc := range tests {
		covered := tc.left.ExtendToCover(tc.right)

		assert.Equal(t, tc.start, covered.Start, tc.description)
		assert.Equal(t, tc.end, covered.End, tc.description)

		// geometrically commutative: same range folded the other way around
		flipped := tc.right.ExtendToCover(tc.left)
		assert.Equal(t, covered.Start, flipped.Start, tc.description)
		assert.Equal(t, covered.End, flipped.End, tc.description)
	}
}

func TestSpanExtendToCoverKeepsReceiverFileName(t *testing.T) {
	left := span("a.js", loc(5, 2, 3), loc(8, 2, 6))
	right := span("b.js", loc(0, 0, 0), loc(3, 0, 3))

	assert.Equal(t, "a.js", left.ExtendToCover(right).FileName)
	assert.Equal(t, "b.js", right.ExtendToCover(left).FileName)
}

func TestSpanExtendToCoverWithFuzzedSpans(t *testing.T) {
	fuzzLocation := fuzz.New().RandSource(getSrcspanRandSource(t)).Funcs(
		func(l *filepos.Location, c fuzz.Continue) {
			l.Pos = c.Intn(1 << 20)
			l.Row = c.Intn(1 << 10)
			l.Col = c.Intn(1 << 10)
		},
	)

	fuzzSpan := func() filepos.StringSpan {
		var start, end filepos.Location
		fuzzLocation.Fuzz(&start)
		fuzzLocation.Fuzz(&end)
		return filepos.NewSpan("a.js", start.Min(end), start.Max(end))
	}

	for i := 0; i < 1000; i++ {
		s1, s2 := fuzzSpan(), fuzzSpan()

		covered := s1.ExtendToCover(s2)

		require.Equal(t, s1.Start.Min(s2.Start).Pos, covered.Start.Pos)
		require.Equal(t, s1.End.Max(s2.End).Pos, covered.End.Pos)

		// self-union changes nothing
		require.Equal(t, s1, s1.ExtendToCover(s1))
	}
}

func TestSpanWithFileNameRebindsIdentity(t *testing.T) {
	start, end := loc(5, 2, 3), loc(8, 2, 6)
	original := span("a.js", start, end)

	renamed := filepos.WithFileName(original, "b.js")
	assert.Equal(t, "b.js", renamed.FileName)
	assert.Equal(t, start, renamed.Start)
	assert.Equal(t, end, renamed.End)

	// rebinding may change the representation altogether
	handle := filepos.NewFileName("c.js")
	rehomed := filepos.WithFileName(original, handle)
	assert.Same(t, handle, rehomed.FileName)
	assert.Equal(t, start, rehomed.Start)
	assert.Equal(t, end, rehomed.End)
}

func TestSpanWithSharedFileNameSharesOneHandle(t *testing.T) {
	original := span("a.js", loc(5, 2, 3), loc(8, 2, 6))

	shared := filepos.WithSharedFileName(original)
	require.Equal(t, "a.js", shared.FileName.Name())
	assert.Equal(t, original.Start, shared.Start)
	assert.Equal(t, original.End, shared.End)

	copy1, copy2 := shared, shared
	assert.Same(t, copy1.FileName, copy2.FileName)
}

func TestSpanWithOwnedFileNamePreservesText(t *testing.T) {
	source := "a.js\nvar x = 1;\n"
	original := span(source[:4], loc(5, 1, 0), loc(8, 1, 3))

	owned := filepos.WithOwnedFileName(original)
	assert.Equal(t, "a.js", owned.FileName)
	assert.Equal(t, original.Start, owned.Start)
	assert.Equal(t, original.End, owned.End)
}

func TestSpanStringRendering(t *testing.T) {
	tests := []struct {
		description string
		span        filepos.StringSpan
		expected    string
	}{
		{
			description: "zero-width span renders as a point",
			span:        span("a.js", loc(5, 2, 3), loc(5, 2, 3)),
			expected:    "a.js:3,4",
		},
		{
			description: "range within one line renders both columns",
			span:        span("a.js", loc(5, 2, 3), loc(8, 2, 6)),
			expected:    "a.js:3,4-7",
		},
		{
			description: "range across lines renders both locations",
			span:        span("a.js", loc(5, 2, 3), loc(20, 4, 1)),
			expected:    "a.js:3,4-5,2",
		},
		{
			description: "zero span renders as first line, first column",
			span:        filepos.NewZeroSpan("a.js"),
			expected:    "a.js:1,1",
		},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, tc.span.String(), tc.description)
		assert.Equal(t, tc.expected, fmt.Sprintf("%s", tc.span), tc.description)
	}
}

func TestSpanStringRendersSharedFileNameViaHandle(t *testing.T) {
	original := span("a.js", loc(5, 2, 3), loc(8, 2, 6))

	shared := filepos.WithSharedFileName(original)

	assert.Equal(t, "a.js:3,4-7", shared.String())
	assert.Equal(t, original.String(), shared.String())
}

func loc(pos, row, col int) filepos.Location {
	return filepos.NewLocation(pos, row, col)
}

func span(fileName string, start, end filepos.Location) filepos.StringSpan {
	return filepos.NewSpan(fileName, start, end)
}
