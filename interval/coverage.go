package interval

// Covered returns the number of positions covered by intervals, which must be
// sorted and disjoint (e.g. the output of Process or Runs).
func Covered(intervals []Interval) int64 {
	var n int64
	for _, iv := range intervals {
		n += iv.Len()
	}
	return n
}
