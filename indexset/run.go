package indexset

import (
	"math"
	"strconv"
)

// Run is a maximal contiguous block of members, Start and End inclusive.
type Run struct {
	Start int
	End   int
}

// Len returns the number of integers covered by the run, 0 when End precedes
// Start. A run spanning more than [math.MaxInt] integers reports math.MaxInt.
func (r Run) Len() int {
	if r.End < r.Start {
		return 0
	}
	span := uint64(r.End) - uint64(r.Start)
	if span >= math.MaxInt {
		return math.MaxInt
	}
	return int(span) + 1
}

// String renders a single-value run bare ("7") and longer runs as "start-end".
func (r Run) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	return strconv.Itoa(r.Start) + "-" + strconv.Itoa(r.End)
}
