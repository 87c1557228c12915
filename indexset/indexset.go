package indexset

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// IndexSet is an ordered set of unique integers.
//
// The zero value is an empty set ready to use.
type IndexSet struct {
	members []int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an IndexSet holding values. Duplicates are collapsed.
func New(values ...int) *IndexSet {
	s := &IndexSet{}
	s.Update(values...)
	return s
}

// From creates an IndexSet from a slice. The slice is not retained.
func From(values []int) *IndexSet { return New(values...) }

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of members.
func (s *IndexSet) Len() int { return len(s.members) }

// IsEmpty reports whether the set has no members.
func (s *IndexSet) IsEmpty() bool { return len(s.members) == 0 }

// Contains reports whether n is a member.
func (s *IndexSet) Contains(n int) bool {
	i := sort.SearchInts(s.members, n)
	return i < len(s.members) && s.members[i] == n
}

// Values returns the members in ascending order as a new slice.
func (s *IndexSet) Values() []int {
	out := make([]int, len(s.members))
	copy(out, s.members)
	return out
}

// Each calls fn(n, i) for every member in ascending order.
func (s *IndexSet) Each(fn func(n, i int)) {
	for i, n := range s.members {
		fn(n, i)
	}
}

// Min returns the smallest member, or false when the set is empty.
func (s *IndexSet) Min() (int, bool) {
	if len(s.members) == 0 {
		return 0, false
	}
	return s.members[0], true
}

// Max returns the largest member, or false when the set is empty.
func (s *IndexSet) Max() (int, bool) {
	if len(s.members) == 0 {
		return 0, false
	}
	return s.members[len(s.members)-1], true
}

// String returns "[v1, v2, ...]" in ascending order.
func (s *IndexSet) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := range s.members {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteByte(']')
	return b.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Add inserts n. Adding an existing member is a no-op.
func (s *IndexSet) Add(n int) {
	i := sort.SearchInts(s.members, n)
	if i < len(s.members) && s.members[i] == n {
		return
	}
	s.members = append(s.members, 0)
	copy(s.members[i+1:], s.members[i:])
	s.members[i] = n
}

// Update inserts every value. It is equivalent to calling [IndexSet.Add] for
// each value but sorts once instead of shifting per insert.
func (s *IndexSet) Update(values ...int) {
	switch len(values) {
	case 0:
		return
	case 1:
		s.Add(values[0])
		return
	}
	merged := make([]int, 0, len(s.members)+len(values))
	merged = append(merged, s.members...)
	merged = append(merged, values...)
	sort.Ints(merged)
	s.members = compact(merged)
}

// Remove deletes n. It returns an error wrapping [ErrNotFound] when n is not a
// member, leaving the set unchanged.
func (s *IndexSet) Remove(n int) error {
	i := sort.SearchInts(s.members, n)
	if i >= len(s.members) || s.members[i] != n {
		return errors.Wrapf(ErrNotFound, "remove %d", n)
	}
	s.members = append(s.members[:i], s.members[i+1:]...)
	return nil
}

// Discard deletes n if present.
func (s *IndexSet) Discard(n int) {
	i := sort.SearchInts(s.members, n)
	if i < len(s.members) && s.members[i] == n {
		s.members = append(s.members[:i], s.members[i+1:]...)
	}
}

// Union adds every member of other to s.
func (s *IndexSet) Union(other *IndexSet) {
	if other == nil || len(other.members) == 0 {
		return
	}
	s.Update(other.members...)
}

// Clone returns an independent copy.
func (s *IndexSet) Clone() *IndexSet {
	return &IndexSet{members: s.Values()}
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports whether s and other hold exactly the same members.
func (s *IndexSet) Equal(other *IndexSet) bool {
	return s.Compare(other) == 0
}

// Compare orders two sets element-wise by their ascending members. A set that
// is a strict prefix of the other sorts first. A nil set compares as empty.
func (s *IndexSet) Compare(other *IndexSet) int {
	var a, b []int
	if s != nil {
		a = s.members
	}
	if other != nil {
		b = other.members
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Runs & gaps
// ─────────────────────────────────────────────────────────────────────────────

// IsContiguous reports whether every adjacent pair of members differs by
// exactly one. Empty and single-member sets are contiguous.
func (s *IndexSet) IsContiguous() bool {
	for i := 1; i < len(s.members); i++ {
		if s.members[i]-s.members[i-1] != 1 {
			return false
		}
	}
	return true
}

// Runs splits the members into maximal contiguous runs, in ascending order.
// An empty set has no runs.
func (s *IndexSet) Runs() []Run {
	if len(s.members) == 0 {
		return []Run{}
	}
	runs := make([]Run, 0, 1)
	current := Run{Start: s.members[0], End: s.members[0]}
	for _, n := range s.members[1:] {
		if n == current.End+1 {
			current.End = n
			continue
		}
		runs = append(runs, current)
		current = Run{Start: n, End: n}
	}
	return append(runs, current)
}

// Gaps returns a new set of the integers strictly between the smallest and
// largest member that are not members themselves.
func (s *IndexSet) Gaps() *IndexSet {
	gaps := &IndexSet{}
	for i := 1; i < len(s.members); i++ {
		for n := s.members[i-1] + 1; n < s.members[i]; n++ {
			gaps.members = append(gaps.members, n)
		}
	}
	return gaps
}

// compact removes adjacent duplicates from a sorted slice in place.
func compact(sorted []int) []int {
	if len(sorted) < 2 {
		return sorted
	}
	out := sorted[:1]
	for _, n := range sorted[1:] {
		if n != out[len(out)-1] {
			out = append(out, n)
		}
	}
	return out
}
