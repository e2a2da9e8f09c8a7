// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"time"

	"carvel.dev/srcspan/pkg/cmd/ui"
	"carvel.dev/srcspan/pkg/filepos"
	"carvel.dev/srcspan/pkg/srcfile"
	"github.com/spf13/cobra"
)

type ResolveOptions struct {
	FilePath string
	Start    int
	End      int
	ShowLine bool
	Debug    bool
}

// ResolveInput carries the already loaded source so that tests can run the
// command without touching the filesystem.
type ResolveInput struct {
	File *srcfile.File
}

func NewResolveOptions() *ResolveOptions {
	return &ResolveOptions{End: -1}
}

func NewResolveCmd(o *ResolveOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "resolve",
		Aliases: []string{"r", "res"},
		Short:   "Resolve byte offsets in one source into a file:line,col span",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVarP(&o.FilePath, "file", "f", "", "File to resolve offsets against (ie local path, HTTP URL, -)")
	cmd.Flags().IntVar(&o.Start, "start", 0, "Byte offset the span starts at")
	cmd.Flags().IntVar(&o.End, "end", -1, "Byte offset the span ends at, exclusive (when negative, the span is a point at start)")
	cmd.Flags().BoolVar(&o.ShowLine, "line", false, "Show the source lines the span covers")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *ResolveOptions) Run() error {
	tty := ui.NewTTY(o.Debug)
	t1 := time.Now()

	defer func() {
		tty.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	if len(o.FilePath) == 0 {
		return fmt.Errorf("Expected file to be specified (via --file)")
	}

	file, err := srcfile.NewFileFromPath(o.FilePath)
	if err != nil {
		return err
	}

	return o.RunWithInput(ResolveInput{File: file}, tty)
}

func (o *ResolveOptions) RunWithInput(in ResolveInput, ui ui.UI) error {
	in.File.Print(ui.DebugWriter())

	span, err := o.span(in.File)
	if err != nil {
		return err
	}

	if span.End.Pos < span.Start.Pos {
		ui.Warnf("Warning: span ends (offset %d) before it starts (offset %d)\n", span.End.Pos, span.Start.Pos)
	}

	ui.Printf("%s\n", span.String())

	if o.ShowLine {
		lines, err := coveredLines(in.File, span)
		if err != nil {
			return err
		}
		for _, line := range lines {
			ui.Printf("%s\n", line)
		}
	}

	return nil
}

func (o *ResolveOptions) span(file *srcfile.File) (filepos.StringSpan, error) {
	if o.End < 0 {
		loc, err := file.LocationAt(o.Start)
		if err != nil {
			return filepos.StringSpan{}, err
		}
		return filepos.NewEmptySpan(file.Name(), loc), nil
	}
	return file.SpanBetween(o.Start, o.End)
}

func coveredLines(file *srcfile.File, span filepos.StringSpan) ([]string, error) {
	lo := span.Start.Min(span.End)
	hi := span.Start.Max(span.End)

	lastRow := hi.Row
	// an end at column 0 does not reach into its own row
	if hi.Col == 0 && hi.Row > lo.Row {
		lastRow--
	}

	var lines []string
	for row := lo.Row; row <= lastRow; row++ {
		line, err := file.Line(row)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
