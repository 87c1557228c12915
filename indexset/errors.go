package indexset

import "github.com/pkg/errors"

// ErrNotFound is returned by [IndexSet.Remove] when the value is not a member.
//
// Use [errors.Is] for comparisons; the returned error carries the value:
//
//	if err := s.Remove(7); errors.Is(err, indexset.ErrNotFound) {
//	    // 7 was never added
//	}
var ErrNotFound = errors.New("indexset: value not found")
