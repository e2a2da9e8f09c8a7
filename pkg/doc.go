// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of srcspan.

This codebase is intentionally organized into well-defined layers. A concerted
effort has been sustained to keep the responsibility of each package concise and
complete. Packages have been designed to be dependent on each other only to the
degree absolutely required.

In the inventory, below, individual packages are named alongside their coupling
with the other packages in the codebase.

	(# of dependents) => <package name> => (# of dependencies)

Where "# of dependents" is the count of packages that import the named package
and "# of dependencies" is the count of packages that this named package
imports.

This is output from the tool https://github.com/jtigger/go-orient.

From top-down (http://www.catb.org/~esr/writings/taoup/html/ch04s03.html),
srcspan code is layered in this way:

# Entry Point

srcspan is built into a single executable format:

	./cmd/srcspan   // a command-line tool

# Commands

There are two commands srcspan implements. The most commonly used is
"resolve", which is also the behavior of the bare top-level command.

	(1) => pkg/cmd => (4)

# Source Content

A srcfile.File holds one piece of source text (read from a local path,
standard input, or an HTTP URL) and resolves byte offsets within it through
a lazily built line index.

	(1) => pkg/srcfile => (1)

# Positions

At the bottom sit the position-tracking value types every other layer
communicates with: Location, a single point in source text, and Span, a
half-open region of it tied to the name of its source.

	(2) => pkg/filepos => (0)

# Utilities

Finally, there is a collection of supporting features. These are
domain-agnostic utilities that provide an application-level capability.

	(1) => pkg/cmd/ui => (0)
	(1) => pkg/version => (0)

# Dependencies

Each package's dependencies on other packages within this module are as follows
(if a package is not listed, it has no dependencies on other packages within
this module):

	pkg/cmd:
	- pkg/cmd/ui
	- pkg/filepos
	- pkg/srcfile
	- pkg/version
	pkg/srcfile:
	- pkg/filepos
*/
package pkg
