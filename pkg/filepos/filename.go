// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package filepos

import (
	"strings"
)

// StringSpan identifies its source by file name value. It is the flavor
// used pervasively during scanning and parsing, where a span sits in every
// token and copies must stay cheap.
type StringSpan = Span[string]

// SharedSpan identifies its source by a *FileName handle, so any number of
// spans reference a single allocation of the name. Slightly costlier to
// produce than a StringSpan, but suited to spans that outlive the scan that
// produced them.
type SharedSpan = Span[*FileName]

// FileName is an immutable source name shared between spans by handle.
type FileName struct {
	name string
}

// NewFileName returns a shared handle holding the given name.
func NewFileName(name string) *FileName {
	return &FileName{name: name}
}

// Name returns the file name text.
func (n *FileName) Name() string {
	if n == nil {
		return ""
	}
	return n.name
}

func (n *FileName) String() string { return n.Name() }

// WithSharedFileName converts a string-flavored span into a SharedSpan,
// copying the name text into one freshly allocated handle. Copies of the
// result all share that handle, independent of whatever buffer the original
// string value sliced.
func WithSharedFileName(s Span[string]) SharedSpan {
	return WithFileName(s, NewFileName(strings.Clone(s.FileName)))
}

// WithOwnedFileName returns a copy of s whose file name is an independently
// owned copy of the text, detached from any larger allocation the original
// string value may alias (such as a buffer holding an entire source file).
func WithOwnedFileName(s Span[string]) Span[string] {
	return WithFileName(s, strings.Clone(s.FileName))
}
