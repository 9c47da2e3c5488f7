// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

// See doc.go for documentation

import (
	"fmt"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/vcontext"
	"v.io/x/lib/cmdline"
)

func newCmdPrompt() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "prompt",
		Short: "Read include and exclude interval lists interactively from stdin",
		Long: `
Prompts for a line of include intervals and a line of exclude intervals, each in
the form "10-100, 200-300", and prints the include intervals minus the exclude
intervals.  A malformed line is reported and must be re-entered.`,
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return fmt.Errorf("prompt takes no arguments, but got %v", argv)
		}
		return prompt(env.Stdin, env.Stdout)
	})
	return cmd
}

func newCmdFiles() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "files",
		Short: "Subtract the intervals listed in one file from those listed in another",
		Long: `
Each input file holds interval lists, one or more per line, in the form
"10-100, 200-300".  Blank lines and lines starting with '#' are ignored, and
files ending in .gz are decompressed.  The result is written to --output, or to
stdout if --output is empty.`,
	}
	opts := filesOpts{}
	cmd.Flags.StringVar(&opts.includePath, "include", "", "Path of the include interval file (required)")
	cmd.Flags.StringVar(&opts.excludePath, "exclude", "", "Path of the exclude interval file; no exclusions if empty")
	cmd.Flags.StringVar(&opts.outputPath, "output", "", "Output path. By default the result is written to stdout")
	cmd.Flags.StringVar(&opts.format, "format", "text", `Output format, either "text" or "tsv"`)
	cmd.Flags.BoolVar(&opts.checksum, "checksum", false, "Log a checksum of the result")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return fmt.Errorf("files takes no arguments, but got %v", argv)
		}
		return diffFiles(vcontext.Background(), opts, env.Stdout)
	})
	return cmd
}

func main() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(
		&cmdline.Command{
			Name:     "bio-interval-diff",
			Short:    "Subtract one set of integer intervals from another",
			LookPath: false,
			Children: []*cmdline.Command{
				newCmdPrompt(),
				newCmdFiles(),
			},
		})
}
