package collections

import (
	"strconv"
	"strings"

	"github.com/hasbyte1/go-clique/indexset"
)

// DefaultFormat is the template used by [Collection.Format] and [Parse] when
// none is given.
const DefaultFormat = "{head}{padding}{tail} [{ranges}]"

// signatureFormat renders the head, padding and tail only.
const signatureFormat = "{head}{padding}{tail}"

// Format renders the collection through a template. The recognised
// placeholders are:
//
//	{head}     the head
//	{tail}     the tail
//	{padding}  "%0Nd" for padding N, or "%d"
//	{range}    "min-max" over the whole span ("" when empty, "7-7" when single)
//	{ranges}   contiguous runs joined by ", ", e.g. "1-3, 7, 9-12"
//	{holes}    the runs of [Collection.Holes], same rendering as {ranges}
//
// Any other text, including unknown placeholders, is copied verbatim.
// {range} ignores holes; use it only on contiguous collections.
//
// With no argument, [DefaultFormat] is used.
func (c *Collection) Format(pattern ...string) string {
	tmpl := DefaultFormat
	if len(pattern) > 0 {
		tmpl = pattern[0]
	}

	pairs := []string{
		"{head}", c.head,
		"{tail}", c.tail,
		"{padding}", paddingDirective(c.padding),
	}
	if strings.Contains(tmpl, "{range}") {
		pairs = append(pairs, "{range}", spanText(c.indexes))
	}
	if strings.Contains(tmpl, "{ranges}") {
		pairs = append(pairs, "{ranges}", runsText(c.indexes))
	}
	if strings.Contains(tmpl, "{holes}") {
		pairs = append(pairs, "{holes}", runsText(c.indexes.Gaps()))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// String renders the collection with [DefaultFormat].
func (c *Collection) String() string { return c.Format() }

// GoString returns a debugging form such as <Collection "a.%04d.b [1-3]">.
func (c *Collection) GoString() string {
	return "<Collection " + strconv.Quote(c.Format()) + ">"
}

func paddingDirective(padding int) string {
	if padding > 0 {
		return "%0" + strconv.Itoa(padding) + "d"
	}
	return "%d"
}

func spanText(set *indexset.IndexSet) string {
	lo, ok := set.Min()
	if !ok {
		return ""
	}
	hi, _ := set.Max()
	return strconv.Itoa(lo) + "-" + strconv.Itoa(hi)
}

func runsText(set *indexset.IndexSet) string {
	runs := set.Runs()
	parts := make([]string, len(runs))
	for i, r := range runs {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}
