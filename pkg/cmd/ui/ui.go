// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"io"
)

// UI is the output surface of the command-line tool. Results go through
// Printf; diagnostics go through Warnf; Debugf and DebugWriter emit only
// when debugging is enabled.
type UI interface {
	Printf(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	DebugWriter() io.Writer
}
