// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"carvel.dev/srcspan/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

type SrcspanOptions struct{}

func NewDefaultSrcspanOptions() *SrcspanOptions {
	return &SrcspanOptions{}
}

func NewDefaultSrcspanCmd() *cobra.Command {
	return NewSrcspanCmd(NewDefaultSrcspanOptions())
}

func NewSrcspanCmd(o *SrcspanOptions) *cobra.Command {
	cmd := NewResolveCmd(NewResolveOptions())

	cmd.Use = "srcspan"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "srcspan resolves byte offsets in source text into file:line,col spans"
	cmd.Long = `srcspan resolves byte offsets in source text into file:line,col spans.

Docs: https://carvel.dev/srcspan`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(NewResolveCmd(NewResolveOptions())) // also available as an explicit subcommand

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
