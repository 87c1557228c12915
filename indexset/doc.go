// Package indexset provides IndexSet, an ordered, duplicate-free set of
// integers.
//
// # Overview
//
// IndexSet keeps its members in a sorted slice, so iteration is always in
// ascending order regardless of insertion order and membership tests are a
// binary search:
//
//	s := indexset.New(5, 1, 3, 1)
//	s.Values()   // → [1 3 5]
//	s.Contains(3) // → true
//	s.String()   // → "[1, 3, 5]"
//
// # Runs and gaps
//
// The set can be decomposed into maximal contiguous runs and can report the
// integers missing between its smallest and largest member:
//
//	s := indexset.New(1, 2, 5, 6, 7, 9)
//	s.Runs()          // → [{1 2} {5 7} {9 9}]
//	s.Gaps().Values() // → [3 4 8]
//
// Both are computed iteratively, so very large or very sparse sets never
// recurse.
//
// # Thread safety
//
// An IndexSet is a plain value holder. Callers sharing one across goroutines
// must serialise access themselves.
package indexset
