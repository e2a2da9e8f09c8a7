// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package srcfile

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"carvel.dev/srcspan/pkg/filepos"
)

// File is a single piece of source text under a display name, able to
// resolve byte offsets within it into Locations and Spans.
type File struct {
	name string
	data []byte

	// byte offset of the first byte of each row; built on first use
	lineStarts []int
}

// NewFile returns a File over the given contents. The name is carried into
// every Span the File produces; it is often a file path, but can be an
// arbitrary marker like "stdin".
func NewFile(name string, data []byte) *File {
	return &File{name: name, data: data}
}

// NewFileFromSource reads the source's contents into a File named after it.
func NewFileFromSource(src Source) (*File, error) {
	data, err := src.Bytes()
	if err != nil {
		return nil, fmt.Errorf("Reading %s: %s", src.Description(), err)
	}
	return NewFile(src.Name(), data), nil
}

// NewFileFromPath reads the file at path. "-" means standard input;
// http:// and https:// URLs are fetched.
func NewFileFromPath(path string) (*File, error) {
	switch {
	case path == "-":
		return NewFileFromSource(NewStdinSource())
	case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
		return NewFileFromSource(NewHTTPSource(path))
	default:
		return NewFileFromSource(NewLocalSource(path))
	}
}

// Name returns the display name of the source.
func (f *File) Name() string { return f.name }

// Len returns the length of the contents in bytes.
func (f *File) Len() int { return len(f.data) }

// Print writes a short summary of the contents, used for debug output.
func (f *File) Print(out io.Writer) {
	fmt.Fprintf(out, "- %s (%d bytes, %d rows)\n", f.name, len(f.data), len(f.lineStartOffsets()))
}

// LocationAt resolves a byte offset into a Location whose row and column
// agree with the contents. Rows split on newline bytes; columns count
// characters (not bytes) from the start of the row.
//
// Valid offsets range from 0 through Len() inclusive: the exclusive end of
// a span may point one past the last byte.
func (f *File) LocationAt(offset int) (filepos.Location, error) {
	if offset < 0 || offset > len(f.data) {
		return filepos.Location{}, fmt.Errorf(
			"Expected offset %d to be between 0 and %d", offset, len(f.data))
	}

	starts := f.lineStartOffsets()
	row := sort.SearchInts(starts, offset+1) - 1
	col := utf8.RuneCount(f.data[starts[row]:offset])

	return filepos.NewLocation(offset, row, col), nil
}

// SpanBetween resolves a pair of byte offsets into a Span over this File's
// name: startOffset inclusive, endOffset exclusive. Like span construction
// itself, it does not reorder or reject an inverted pair; offsets outside
// the contents are the only error.
func (f *File) SpanBetween(startOffset, endOffset int) (filepos.StringSpan, error) {
	start, err := f.LocationAt(startOffset)
	if err != nil {
		return filepos.StringSpan{}, err
	}

	end, err := f.LocationAt(endOffset)
	if err != nil {
		return filepos.StringSpan{}, err
	}

	return filepos.NewSpan(f.name, start, end), nil
}

// Line returns the contents of the given 0-based row, without the newline
// that ends it (a carriage return preceding that newline is dropped too).
func (f *File) Line(row int) (string, error) {
	starts := f.lineStartOffsets()
	if row < 0 || row >= len(starts) {
		return "", fmt.Errorf(
			"Expected row %d to be between 0 and %d", row, len(starts)-1)
	}

	end := len(f.data)
	if row+1 < len(starts) {
		end = starts[row+1] - 1
	}

	return strings.TrimSuffix(string(f.data[starts[row]:end]), "\r"), nil
}

func (f *File) lineStartOffsets() []int {
	if f.lineStarts == nil {
		starts := []int{0}
		for i, b := range f.data {
			if b == '\n' {
				starts = append(starts, i+1)
			}
		}
		f.lineStarts = starts
	}
	return f.lineStarts
}
