package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/intervaldiff/encoding/intervallist"
	"github.com/grailbio/intervaldiff/interval"
)

const (
	includePrompt = "Please enter include intervals (example 1-3, 4-5): "
	excludePrompt = "Please enter exclude intervals (example 1-3, 4-5): "
	reenterPrompt = "Please re-enter the intervals: "
)

// readIntervals prints message and reads lines from scanner until one parses.
// Each parse failure is reported on out before asking again.
func readIntervals(message string, scanner *bufio.Scanner, out io.Writer) ([]interval.Interval, error) {
	fmt.Fprintln(out, message)
	for scanner.Scan() {
		ivs, err := intervallist.ParseLine(scanner.Text())
		if err == nil {
			return ivs, nil
		}
		fmt.Fprintln(out, err.Error())
		fmt.Fprintln(out, reenterPrompt)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, errors.E(errors.Invalid, io.ErrUnexpectedEOF, "input ended before a valid interval list was entered")
}

// prompt asks for include and exclude intervals on in, and writes the
// difference to out.
func prompt(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	include, err := readIntervals(includePrompt, scanner, out)
	if err != nil {
		return err
	}
	exclude, err := readIntervals(excludePrompt, scanner, out)
	if err != nil {
		return err
	}
	result, err := interval.Subtract(include, exclude)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Output:")
	return intervallist.WriteText(out, result)
}
