// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package intervallist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grailbio/intervaldiff/interval"
)

// ParseError reports a single malformed interval entry.  The whole line it
// came from should be considered unusable.
type ParseError struct {
	// Entry is the offending comma-separated entry, with surrounding whitespace
	// removed.
	Entry string
	// Err is the underlying integer parsing error, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unable to parse interval: %s (%v)", e.Entry, e.Err)
	}
	return "unable to parse interval: " + e.Entry
}

// ParseLine parses a comma-separated list of intervals such as
//   10-100, 200-300,-5--1
// Each entry is two decimal integers, each optionally signed, separated by a
// hyphen; whitespace around either integer is ignored.  An empty or all-blank
// line yields an empty list, and blank entries between commas are skipped.
// The first malformed entry causes a *ParseError.
//
// Inverted intervals such as 40-31 are returned as written.
func ParseLine(line string) ([]interval.Interval, error) {
	entries := strings.Split(line, ",")
	result := make([]interval.Interval, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		iv, err := parseEntry(entry)
		if err != nil {
			return nil, err
		}
		result = append(result, iv)
	}
	return result, nil
}

// parseEntry parses a single trimmed "<start>-<end>" entry.
func parseEntry(entry string) (iv interval.Interval, err error) {
	startTok, pos := scanInteger(entry, 0)
	if startTok == "" {
		return iv, &ParseError{Entry: entry}
	}
	pos = skipSpace(entry, pos)
	if pos == len(entry) || entry[pos] != '-' {
		return iv, &ParseError{Entry: entry}
	}
	pos = skipSpace(entry, pos+1)
	endTok, pos := scanInteger(entry, pos)
	if endTok == "" || skipSpace(entry, pos) != len(entry) {
		return iv, &ParseError{Entry: entry}
	}

	var start, end int64
	if start, err = strconv.ParseInt(startTok, 10, 32); err != nil {
		return iv, &ParseError{Entry: entry, Err: err}
	}
	if end, err = strconv.ParseInt(endTok, 10, 32); err != nil {
		return iv, &ParseError{Entry: entry, Err: err}
	}
	return interval.Interval{Start: interval.PosType(start), End: interval.PosType(end)}, nil
}

// scanInteger returns the optionally-signed run of decimal digits starting at
// s[pos], and the position just past it.  It returns "" if there are no
// digits.
func scanInteger(s string, pos int) (string, int) {
	begin := pos
	if pos < len(s) && (s[pos] == '-' || s[pos] == '+') {
		pos++
	}
	digits := pos
	for ; pos < len(s); pos++ {
		if s[pos] < '0' || s[pos] > '9' {
			break
		}
	}
	if pos == digits {
		return "", begin
	}
	return s[begin:pos], pos
}

// skipSpace returns the position of the first non-whitespace byte at or after
// s[pos].
func skipSpace(s string, pos int) int {
	for ; pos < len(s); pos++ {
		if s[pos] > ' ' {
			break
		}
	}
	return pos
}
