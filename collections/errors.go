package collections

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors returned by Collection, Assemble and Parse.
//
// Use [errors.Is] for comparisons:
//
//	if err := c.Add(item); errors.Is(err, collections.ErrNoMatch) {
//	    // item has a different head, tail or padding
//	}
var (
	// ErrNoMatch is returned when an item does not fit a collection's
	// head, tail and padding.
	ErrNoMatch = errors.New("collections: item does not match sequence pattern")

	// ErrNotPresent is returned when removing an item whose index is not a
	// member of the collection.
	ErrNotPresent = errors.New("collections: item not present in sequence")

	// ErrIncompatible is returned by Merge when the two collections differ in
	// head, tail or padding.
	ErrIncompatible = errors.New("collections: collections are not compatible")

	// ErrValueMismatch is returned by Parse when the value does not fit the
	// template.
	ErrValueMismatch = errors.New("collections: value did not match pattern")

	// ErrInvalidPattern is returned by Assemble and CompilePattern when an
	// assembly pattern does not compile or lacks the index/padding groups.
	ErrInvalidPattern = errors.New("collections: invalid assembly pattern")
)

// CollectionError reports a failed membership operation on a [Collection].
//
// Err is one of [ErrNoMatch], [ErrNotPresent] or [ErrIncompatible]. Cause,
// when set, is the lower-level failure that triggered it.
type CollectionError struct {
	Op    string // add, remove, merge or parse
	Item  string
	Err   error
	Cause error
}

func (e *CollectionError) Error() string {
	msg := fmt.Sprintf("%v: %s %q", e.Err, e.Op, e.Item)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel and the cause to [errors.Is] / [errors.As].
func (e *CollectionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}
