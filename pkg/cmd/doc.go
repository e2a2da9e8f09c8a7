// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to the full set of srcspan's "commands" -- instances of cobra.Command
(not to be confused with ./cmd which contains the bootstrapping for executing srcspan).

A cobra.Command is the starting point of execution.

For a list of commands run:

	$ srcspan help

The default command is "resolve".
*/
package cmd
