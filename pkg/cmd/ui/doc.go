// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package ui provides a thin abstraction over the process's output streams
(typically, a tty device), separating results from warnings and debug
chatter.
*/
package ui
