// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

import (
	"sort"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

// Processor computes union(include) - union(exclude).
//
// A Processor owns copies of its inputs; the slices passed to NewProcessor are
// never sorted or retained.  Process does not modify the Processor, so it may
// be called from multiple goroutines.
type Processor struct {
	include []Interval
	exclude []Interval
}

// NewProcessor returns a Processor for the given include and exclude
// intervals.  Either list may be empty, but neither may be nil; a nil list
// yields an errors.Invalid error.
func NewProcessor(include, exclude []Interval) (*Processor, error) {
	if include == nil {
		return nil, errors.E(errors.Invalid, "interval.NewProcessor: include intervals cannot be nil")
	}
	if exclude == nil {
		return nil, errors.E(errors.Invalid, "interval.NewProcessor: exclude intervals cannot be nil")
	}
	return &Processor{
		include: append([]Interval{}, include...),
		exclude: append([]Interval{}, exclude...),
	}, nil
}

// Subtract is shorthand for NewProcessor(include, exclude) followed by
// Process.
func Subtract(include, exclude []Interval) ([]Interval, error) {
	p, err := NewProcessor(include, exclude)
	if err != nil {
		return nil, err
	}
	return p.Process(), nil
}

// Process returns the positions covered by some include interval and by no
// exclude interval, as a sorted list of disjoint intervals.
//
// Each list is first collapsed into runs (see Runs), each run becomes a pair of
// endpoints, and a single sweep over the sorted endpoints emits the result.
// Sorting dominates: O(n log n) in the total number of input intervals.
func (p *Processor) Process() []Interval {
	result := []Interval{}
	if len(p.include) == 0 {
		return result
	}

	endpoints := runEndpoints(Runs(p.include), IncludeBegin, IncludeEnd, nil)
	if len(p.exclude) > 0 {
		endpoints = runEndpoints(Runs(p.exclude), ExcludeBegin, ExcludeEnd, endpoints)
	}
	sort.Sort(endpointSorter(endpoints))

	var (
		inclusion, exclusion bool
		// startPoint is only meaningful while inclusion && !exclusion.
		startPoint int64
	)
	for _, e := range endpoints {
		switch e.Kind {
		case IncludeBegin:
			if !exclusion {
				startPoint = e.Pos
			}
			inclusion = true
		case IncludeEnd:
			if !exclusion {
				result = append(result, Interval{PosType(startPoint), PosType(e.Pos - 1)})
			}
			inclusion = false
		case ExcludeBegin:
			if inclusion && startPoint < e.Pos {
				result = append(result, Interval{PosType(startPoint), PosType(e.Pos - 1)})
			}
			exclusion = true
		case ExcludeEnd:
			if inclusion {
				startPoint = e.Pos
			}
			exclusion = false
		default:
			log.Panicf("internal error: unexpected endpoint %v", e)
		}
	}
	return result
}

// Runs collapses intervals into runs: the intervals are sorted by start, and
// each interval whose start is <= the end of the current run extends that run.
// Intervals that merely touch, such as [1, 5] and [6, 10], stay separate.
// Inverted intervals (Start > End) cover nothing and are dropped.
//
// The argument is not modified.
func Runs(intervals []Interval) []Interval {
	sorted := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Empty() {
			log.Debug.Printf("interval.Runs: dropping inverted interval %v", iv)
			continue
		}
		sorted = append(sorted, iv)
	}
	if len(sorted) == 0 {
		return sorted
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	runs := sorted[:1]
	cur := &runs[0]
	for _, next := range sorted[1:] {
		if next.Start <= cur.End {
			if next.End > cur.End {
				cur.End = next.End
			}
			continue
		}
		runs = append(runs, next)
		cur = &runs[len(runs)-1]
	}
	return runs
}

// runEndpoints appends a (begin, end) endpoint pair for every run to dst.  The
// end endpoint sits one past the run's last position.
func runEndpoints(runs []Interval, begin, end EndpointKind, dst []Endpoint) []Endpoint {
	if dst == nil {
		dst = make([]Endpoint, 0, 2*len(runs))
	}
	for _, r := range runs {
		dst = append(dst,
			Endpoint{Pos: int64(r.Start), Kind: begin},
			Endpoint{Pos: int64(r.End) + 1, Kind: end})
	}
	return dst
}
