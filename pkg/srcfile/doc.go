// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package srcfile resolves byte offsets within source text into filepos
Locations and Spans.

Producers that scan text directly track rows and columns as they go;
everything else -- tooling handed raw offsets, tests, the resolve command
-- needs the mapping computed after the fact. File holds one source's
contents and computes that mapping from a lazily built line index, so that
the offsets, rows, and columns of every Location it produces agree with the
text.

Contents come from a Source: bytes already in hand, a local file, standard
input, or an HTTP URL. This keeps the rest of the code free of the details
of where source text is read from.
*/
package srcfile
