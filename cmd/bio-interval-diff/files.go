package main

import (
	"context"
	"fmt"
	"io"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/intervaldiff/encoding/intervallist"
	"github.com/grailbio/intervaldiff/interval"
)

type filesOpts struct {
	// includePath is the interval file to subtract from.  Required.
	includePath string
	// excludePath is the interval file to subtract.  If empty, nothing is
	// subtracted.
	excludePath string
	// outputPath receives the result.  If empty, the result goes to the stdout
	// writer passed to diffFiles.
	outputPath string
	// format is "text" or "tsv".
	format string
	// checksum causes a fingerprint of the result to be logged.
	checksum bool
}

func diffFiles(ctx context.Context, opts filesOpts, stdout io.Writer) error {
	if opts.includePath == "" {
		return fmt.Errorf("files: --include must be set")
	}
	format, err := intervallist.ParseOutputFormat(opts.format)
	if err != nil {
		return err
	}

	paths := []string{opts.includePath, opts.excludePath}
	lists := [][]interval.Interval{{}, {}}
	err = traverse.Each(len(paths), func(i int) error {
		if paths[i] == "" {
			return nil
		}
		ivs, err := intervallist.ReadFile(ctx, paths[i])
		if err != nil {
			return err
		}
		lists[i] = ivs
		return nil
	})
	if err != nil {
		return err
	}

	result, err := interval.Subtract(lists[0], lists[1])
	if err != nil {
		return err
	}
	log.Printf("result: %d interval(s), %d position(s) covered", len(result), interval.Covered(result))
	if opts.checksum {
		log.Printf("result checksum: %016x", intervallist.Checksum(result))
	}
	if opts.outputPath == "" {
		return intervallist.Write(stdout, format, result)
	}
	return intervallist.WriteFile(ctx, opts.outputPath, format, result)
}
