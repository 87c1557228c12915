package collections

import (
	"encoding/binary"
	"encoding/hex"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Compare orders collections by head, then tail, then padding, then their
// ascending indexes element by element. It returns -1, 0 or +1.
//
// A nil collection sorts before every non-nil one, and two nils are equal.
func (c *Collection) Compare(other *Collection) int {
	switch {
	case c == nil && other == nil:
		return 0
	case c == nil:
		return -1
	case other == nil:
		return 1
	}
	if r := strings.Compare(c.head, other.head); r != 0 {
		return r
	}
	if r := strings.Compare(c.tail, other.tail); r != 0 {
		return r
	}
	switch {
	case c.padding < other.padding:
		return -1
	case c.padding > other.padding:
		return 1
	}
	return c.indexes.Compare(other.indexes)
}

// Equal reports whether both collections have the same signature and indexes.
func (c *Collection) Equal(other *Collection) bool { return c.Compare(other) == 0 }

// Less reports whether c sorts before other.
func (c *Collection) Less(other *Collection) bool { return c.Compare(other) < 0 }

// Sort orders cols in place by [Collection.Compare].
func Sort(cols []*Collection) {
	sort.SliceStable(cols, func(i, j int) bool { return cols[i].Less(cols[j]) })
}

// Fingerprint returns a hex-encoded BLAKE2b-256 digest of the head, tail,
// padding and ordered indexes. Equal collections share a fingerprint, which
// makes it usable as a cache key for a sequence.
func (c *Collection) Fingerprint() string {
	buf := make([]byte, 0, len(c.head)+len(c.tail)+binary.MaxVarintLen64*(c.indexes.Len()+3))
	buf = binary.AppendUvarint(buf, uint64(len(c.head)))
	buf = append(buf, c.head...)
	buf = binary.AppendUvarint(buf, uint64(len(c.tail)))
	buf = append(buf, c.tail...)
	buf = binary.AppendUvarint(buf, uint64(c.padding))
	c.indexes.Each(func(n, _ int) {
		buf = binary.AppendVarint(buf, int64(n))
	})
	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}
