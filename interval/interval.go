// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package interval

import (
	"math"
	"strconv"
)

// PosType is the type used to represent interval coordinates.
type PosType int32

const (
	// PosTypeMin is the smallest coordinate that can be represented.
	PosTypeMin = math.MinInt32
	// PosTypeMax is the largest coordinate that can be represented.
	PosTypeMax = math.MaxInt32
)

// Interval is the closed integer range [Start, End].  It is a plain value:
// two Intervals are equal iff both bounds are equal, and it may be used as a
// map key.
//
// Nothing checks Start <= End when an Interval is built.  Processor treats an
// inverted interval as covering no positions.
type Interval struct {
	Start PosType
	End   PosType
}

// Empty returns whether the interval covers no positions, i.e. Start > End.
func (iv Interval) Empty() bool {
	return iv.Start > iv.End
}

// Len returns the number of positions covered by the interval.
func (iv Interval) Len() int64 {
	if iv.Empty() {
		return 0
	}
	return int64(iv.End) - int64(iv.Start) + 1
}

// String renders the interval as "<start>-<end>".
func (iv Interval) String() string {
	buf := make([]byte, 0, 24)
	buf = strconv.AppendInt(buf, int64(iv.Start), 10)
	buf = append(buf, '-')
	buf = strconv.AppendInt(buf, int64(iv.End), 10)
	return string(buf)
}
