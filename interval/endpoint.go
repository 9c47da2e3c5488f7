package interval

import "fmt"

// This file defines the sweep events used by Processor.
//
// Each merged run [start, end] contributes a begin event at start and an end
// event at end+1, i.e. the run is handled as the half-open interval
// [start, end+1), the same convention the rest of this package's callers use
// for BED coordinates.  With half-open end positions, the rank order below
// makes every event at a shared position close before anything opens there,
// and makes an exclusion take effect before a new inclusion opens.  For
// example, the include run [10, 100] and the exclude run [101, 120] produce
//   {10 IncludeBegin} {101 IncludeEnd} {101 ExcludeBegin} {121 ExcludeEnd}
// and the include run [5, 5] produces {5 IncludeBegin} {6 IncludeEnd}.
//
// End positions are int64 so that End == PosTypeMax has a representable limit.

// EndpointKind tags an Endpoint as the beginning or end of an include or
// exclude run.
type EndpointKind uint8

const (
	// IncludeBegin is the first position of an include run.
	IncludeBegin EndpointKind = iota
	// IncludeEnd is one past the last position of an include run.
	IncludeEnd
	// ExcludeBegin is the first position of an exclude run.
	ExcludeBegin
	// ExcludeEnd is one past the last position of an exclude run.
	ExcludeEnd

	numEndpointKinds
)

// kindRanks breaks ties between endpoints at the same position.  Lower ranks
// sort first.
var kindRanks = [numEndpointKinds]int{
	IncludeEnd:   1,
	ExcludeEnd:   2,
	ExcludeBegin: 3,
	IncludeBegin: 4,
}

var kindNames = [numEndpointKinds]string{
	IncludeBegin: "IncludeBegin",
	IncludeEnd:   "IncludeEnd",
	ExcludeBegin: "ExcludeBegin",
	ExcludeEnd:   "ExcludeEnd",
}

// Rank returns the tie-break rank of the kind.  It panics on a kind outside
// the four defined above.
func (k EndpointKind) Rank() int {
	if k >= numEndpointKinds {
		panic(fmt.Sprintf("internal error: unknown endpoint kind %d", k))
	}
	return kindRanks[k]
}

func (k EndpointKind) String() string {
	if k >= numEndpointKinds {
		return fmt.Sprintf("EndpointKind(%d)", k)
	}
	return kindNames[k]
}

// Endpoint is a single sweep event.
type Endpoint struct {
	Pos  int64
	Kind EndpointKind
}

func (e Endpoint) String() string {
	return fmt.Sprintf("{%d %v}", e.Pos, e.Kind)
}

// Compare returns a negative value if a sorts before b, a positive value if a
// sorts after b, and zero if they are interchangeable.  Endpoints are ordered
// by position, then by kind rank.
func Compare(a, b Endpoint) int {
	switch {
	case a.Pos < b.Pos:
		return -1
	case a.Pos > b.Pos:
		return 1
	}
	return a.Kind.Rank() - b.Kind.Rank()
}

// Less reports whether e sorts before other.
func (e Endpoint) Less(other Endpoint) bool {
	return Compare(e, other) < 0
}

// endpointSorter implements sort.Interface.
type endpointSorter []Endpoint

func (s endpointSorter) Len() int           { return len(s) }
func (s endpointSorter) Less(i, j int) bool { return Compare(s[i], s[j]) < 0 }
func (s endpointSorter) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
