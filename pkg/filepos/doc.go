// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the position-tracking value types shared by lexers,
parsers, and diagnostics: Location, a single point in source text, and Span,
a half-open region of it tied to the name of its source.

Positions are crucial when reporting errors to the user. Every token and
syntax node carries a Span so that a message can say exactly where in the
original text it came from, in the familiar "file:line,col" form.

Span is generic over how the file name is represented. Scanning and parsing
code uses the plain string flavor (StringSpan), which appears in every
lexical construct and is cheap to copy. Code that retains spans past the
scan that produced them -- collected diagnostics, long-lived result sets --
converts them with WithSharedFileName, so that many spans reference one
*FileName allocation, or with WithOwnedFileName for an independent copy of
the name text.
*/
package filepos
