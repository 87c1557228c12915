package collections

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-clique/indexset"
)

// Collection is a family of items of the form head + numeral + tail that
// differ only by their integer index.
//
// A padding of zero means the numeral has no fixed width and must not carry
// leading zeros. A padding of N means the numeral is exactly N digits wide,
// left-filled with zeros.
//
// # Creating a collection
//
//	c := collections.New("/head.", ".ext", 4)
//	c := collections.New("/head.", ".ext", 0, 1, 2, 3)
//
// # Signature
//
// Head, tail and padding are changed only through [Collection.SetHead],
// [Collection.SetTail] and [Collection.SetPadding], which keep the cached
// matcher in sync. The index set is reachable through [Collection.Indexes] but
// can never be replaced.
//
// A Collection is not safe for concurrent use; even Match fills the matcher
// cache on first call.
type Collection struct {
	head    string
	tail    string
	padding int
	indexes *indexset.IndexSet
	matcher *regexp.Regexp // nil until first match
}

// Match describes how an item fits a collection.
type Match struct {
	// Index is the parsed integer value of the numeral.
	Index int
	// Numeral is the digit text found between head and tail.
	Numeral string
	// Padded reports whether the numeral carried leading zeros.
	Padded bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection. A negative padding is treated as zero.
func New(head, tail string, padding int, indexes ...int) *Collection {
	return &Collection{
		head:    head,
		tail:    tail,
		padding: max(padding, 0),
		indexes: indexset.New(indexes...),
	}
}

// newWithSet wraps an existing index set without copying it.
func newWithSet(head, tail string, padding int, set *indexset.IndexSet) *Collection {
	c := New(head, tail, padding)
	c.indexes = set
	return c
}

// Clone returns a deep copy of c.
func (c *Collection) Clone() *Collection {
	return newWithSet(c.head, c.tail, c.padding, c.indexes.Clone())
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Head returns the literal prefix shared by all items.
func (c *Collection) Head() string { return c.head }

// Tail returns the literal suffix shared by all items.
func (c *Collection) Tail() string { return c.tail }

// Padding returns the fixed numeral width, or 0 for variable width.
func (c *Collection) Padding() int { return c.padding }

// Indexes returns the collection's own index set. Mutating it mutates c.
func (c *Collection) Indexes() *indexset.IndexSet { return c.indexes }

// Count returns the number of items in the collection.
func (c *Collection) Count() int { return c.indexes.Len() }

// SetHead replaces the head and recompiles the matcher.
func (c *Collection) SetHead(head string) {
	c.head = head
	c.compile()
}

// SetTail replaces the tail and recompiles the matcher.
func (c *Collection) SetTail(tail string) {
	c.tail = tail
	c.compile()
}

// SetPadding replaces the padding and recompiles the matcher. A negative
// value is treated as zero.
func (c *Collection) SetPadding(padding int) {
	c.padding = max(padding, 0)
	c.compile()
}

// compile invalidates the cached matcher; it is rebuilt on the next match.
func (c *Collection) compile() { c.matcher = nil }

// pattern returns the literal-anchored matcher for head and tail. The width
// rule for padding is checked after a successful match, see
// [Collection.Match].
func (c *Collection) pattern() *regexp.Regexp {
	if c.matcher == nil {
		c.matcher = regexp.MustCompile(
			"^" + regexp.QuoteMeta(c.head) +
				`(?P<index>(?P<padding>0*)\d+?)` +
				regexp.QuoteMeta(c.tail) + "$",
		)
	}
	return c.matcher
}

// ─────────────────────────────────────────────────────────────────────────────
// Membership
// ─────────────────────────────────────────────────────────────────────────────

// Match reports whether item fits the collection's head, tail and padding,
// regardless of whether its index is currently a member.
func (c *Collection) Match(item string) (Match, bool) {
	re := c.pattern()
	groups := re.FindStringSubmatch(item)
	if groups == nil {
		return Match{}, false
	}
	numeral := groups[re.SubexpIndex("index")]
	padded := groups[re.SubexpIndex("padding")] != ""

	if c.padding == 0 {
		if padded {
			return Match{}, false
		}
	} else if len(numeral) != c.padding {
		return Match{}, false
	}

	index, err := strconv.Atoi(numeral)
	if err != nil {
		return Match{}, false
	}
	return Match{Index: index, Numeral: numeral, Padded: padded}, true
}

// Contains reports whether item matches the collection and its index is a
// member.
func (c *Collection) Contains(item string) bool {
	m, ok := c.Match(item)
	return ok && c.indexes.Contains(m.Index)
}

// Add inserts the index of item. Adding a member again is a no-op.
// Returns a [*CollectionError] wrapping [ErrNoMatch] if item does not match.
func (c *Collection) Add(item string) error {
	m, ok := c.Match(item)
	if !ok {
		return &CollectionError{Op: "add", Item: item, Err: ErrNoMatch}
	}
	c.indexes.Add(m.Index)
	return nil
}

// Remove deletes the index of item. Returns a [*CollectionError] wrapping
// [ErrNotPresent] if item does not match or its index is not a member.
func (c *Collection) Remove(item string) error {
	m, ok := c.Match(item)
	if !ok {
		return &CollectionError{Op: "remove", Item: item, Err: ErrNotPresent, Cause: ErrNoMatch}
	}
	if err := c.indexes.Remove(m.Index); err != nil {
		return &CollectionError{Op: "remove", Item: item, Err: ErrNotPresent, Cause: err}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Render returns the item for index: head + zero-padded numeral + tail.
// A negative index keeps its sign in front of the padded magnitude.
func (c *Collection) Render(index int) string {
	return c.head + padNumeral(index, c.padding) + c.tail
}

// Items returns every item in ascending index order.
func (c *Collection) Items() []string {
	out := make([]string, 0, c.indexes.Len())
	c.indexes.Each(func(n, _ int) { out = append(out, c.Render(n)) })
	return out
}

// Each calls fn(item, i) for every item in ascending index order.
func (c *Collection) Each(fn func(item string, i int)) {
	c.indexes.Each(func(n, i int) { fn(c.Render(n), i) })
}

func padNumeral(index, width int) string {
	digits := strconv.Itoa(index)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) < width {
		digits = strings.Repeat("0", width-len(digits)) + digits
	}
	return sign + digits
}

// ─────────────────────────────────────────────────────────────────────────────
// Gap analysis
// ─────────────────────────────────────────────────────────────────────────────

// IsContiguous reports whether the indexes form one unbroken run. Empty and
// single-item collections are contiguous.
func (c *Collection) IsContiguous() bool { return c.indexes.IsContiguous() }

// Holes returns a collection with the same signature holding the indexes
// missing between the smallest and largest member.
func (c *Collection) Holes() *Collection {
	return newWithSet(c.head, c.tail, c.padding, c.indexes.Gaps())
}

// Separate splits the collection into one collection per contiguous run, in
// ascending order. An empty collection yields a single empty part.
func (c *Collection) Separate() []*Collection {
	runs := c.indexes.Runs()
	if len(runs) == 0 {
		return []*Collection{New(c.head, c.tail, c.padding)}
	}
	members := c.indexes.Values()
	parts := make([]*Collection, 0, len(runs))
	for _, r := range runs {
		// Runs are maximal, so each one is the next r.Len() members.
		parts = append(parts, New(c.head, c.tail, c.padding, members[:r.Len()]...))
		members = members[r.Len():]
	}
	return parts
}

// ─────────────────────────────────────────────────────────────────────────────
// Merging
// ─────────────────────────────────────────────────────────────────────────────

// IsCompatible reports whether other has the same head, tail and padding.
func (c *Collection) IsCompatible(other *Collection) bool {
	return other != nil &&
		c.head == other.head &&
		c.tail == other.tail &&
		c.padding == other.padding
}

// Merge adds every index of other to c. Returns a [*CollectionError] wrapping
// [ErrIncompatible] and leaves c unchanged if the signatures differ.
func (c *Collection) Merge(other *Collection) error {
	if !c.IsCompatible(other) {
		item := "<nil>"
		if other != nil {
			item = other.Format(signatureFormat)
		}
		return &CollectionError{Op: "merge", Item: item, Err: ErrIncompatible}
	}
	c.indexes.Union(other.indexes)
	return nil
}
