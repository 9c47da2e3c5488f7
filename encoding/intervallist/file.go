package intervallist

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	"github.com/grailbio/intervaldiff/interval"
	"github.com/klauspost/compress/gzip"
	pkgerrors "github.com/pkg/errors"
)

// Read parses every line of r with ParseLine and concatenates the results.
// Blank lines and lines starting with '#' are ignored.  A malformed line
// yields an error whose cause (see github.com/pkg/errors.Cause) is a
// *ParseError.
func Read(r io.Reader) ([]interval.Interval, error) {
	// Note that Scanner does not handle very long lines unless we specify an
	// adequate buffer size in advance.
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	result := []interval.Interval{}
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		ivs, err := ParseLine(line)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "intervallist.Read: line %d", lineIdx)
		}
		result = append(result, ivs...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ReadFile reads an interval file with Read.  Files whose names end in .gz are
// decompressed.
func ReadFile(ctx context.Context, path string) (intervals []interval.Interval, err error) {
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return nil, errors.E(err, path)
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = errors.E(cerr, path)
		}
	}()
	reader := io.Reader(in.Reader(ctx))
	switch fileio.DetermineType(path) {
	case fileio.Gzip:
		if reader, err = gzip.NewReader(reader); err != nil {
			return nil, errors.E(err, path)
		}
	}
	if intervals, err = Read(reader); err != nil {
		return nil, pkgerrors.Wrap(err, path)
	}
	log.Printf("%s: loaded %d interval(s), %d position(s) covered", path, len(intervals),
		interval.Covered(interval.Runs(intervals)))
	return intervals, nil
}

// WriteFile writes intervals to path in the given format.  Paths ending in .gz
// are compressed.
func WriteFile(ctx context.Context, path string, format OutputFormat, intervals []interval.Interval) (err error) {
	var out file.File
	if out, err = file.Create(ctx, path); err != nil {
		return errors.E(err, path)
	}
	defer func() {
		if cerr := out.Close(ctx); cerr != nil && err == nil {
			err = errors.E(cerr, path)
		}
	}()
	w := out.Writer(ctx)
	if fileio.DetermineType(path) != fileio.Gzip {
		return Write(w, format, intervals)
	}
	gz := gzip.NewWriter(w)
	if err = Write(gz, format, intervals); err != nil {
		return err
	}
	return gz.Close()
}
