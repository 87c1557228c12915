package collections

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultMinimumItems is the smallest collection Assemble keeps by default.
const DefaultMinimumItems = 2

// AssembleOptions configures [Assemble].
type AssembleOptions struct {
	// Patterns are expressions compiled by Assemble. Each must contain
	// [DigitsPattern] exactly once.
	Patterns []string

	// Compiled are ready-made patterns used as-is. Each must expose the
	// named groups "index" and "padding".
	//
	// When both Patterns and Compiled are nil, [DigitsPattern] is used. When
	// either is non-nil but there are no patterns in total, nothing matches
	// and every item is returned as remainder.
	Compiled []*regexp.Regexp

	// MinimumItems is the smallest collection size kept in the result.
	// Defaults to [DefaultMinimumItems] if zero or negative, so pass 1 to
	// keep every collection, single items included.
	MinimumItems int

	// IgnoreCase groups items whose heads and tails differ only by case.
	// The resulting collection keeps the casing of the first item seen, so
	// rendered items may differ from the inputs: "shot.2.exr" grouped after
	// "Shot.1.EXR" renders as "Shot.2.EXR", and Contains("shot.2.exr") is
	// false.
	IgnoreCase bool

	// AssumePaddedWhenAmbiguous reads an unpadded collection whose indexes
	// all share one digit width as padded to that width.
	AssumePaddedWhenAmbiguous bool

	// Logger receives debug traces of merge and filter decisions.
	// Defaults to a logger that discards everything.
	Logger logrus.FieldLogger
}

// DefaultAssembleOptions returns AssembleOptions with [DefaultMinimumItems]
// and the default digits pattern.
func DefaultAssembleOptions() AssembleOptions {
	return AssembleOptions{MinimumItems: DefaultMinimumItems}
}

var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// candidateKey groups raw matches. Head and tail are case-folded when the
// assembly ignores case.
type candidateKey struct {
	head    string
	tail    string
	padding int
}

// candidate is a collection under construction together with the input items
// that produced each of its indexes.
type candidate struct {
	key        candidateKey
	collection *Collection
	members    map[string]int
	absorbed   bool
}

func (cd *candidate) record(item string, index int) {
	cd.collection.indexes.Add(index)
	cd.members[item] = index
}

// Assemble groups items into collections and returns them in [Sort] order,
// followed by the remainder: every item that belongs to no returned
// collection, once each, in first-seen order.
//
// Each pattern match contributes its item to the candidate keyed by the text
// before the numeral, the text after it and its padding (the numeral width
// when it has leading zeros, otherwise 0). Unpadded candidates are then merged
// into padded candidates sharing head and tail: every unpadded index whose
// digit count equals the padding joins the padded collection, and an unpadded
// candidate whose indexes all joined one padded collection is dropped.
// Collections smaller than MinimumItems are dropped last.
//
// Returns an error wrapping [ErrInvalidPattern] before processing anything if
// a pattern is malformed.
func Assemble(items []string, opts AssembleOptions) ([]*Collection, []string, error) {
	log := opts.Logger
	if log == nil {
		log = discardLogger
	}
	minimum := opts.MinimumItems
	if minimum <= 0 {
		minimum = DefaultMinimumItems
	}

	patterns, err := assemblyPatterns(opts)
	if err != nil {
		return nil, nil, err
	}
	if len(patterns) == 0 {
		log.Debug("no assembly patterns; every item is remainder")
		return []*Collection{}, uniqueItems(items, nil), nil
	}

	byKey := make(map[candidateKey]*candidate)
	var order []*candidate

	for _, item := range items {
		for _, re := range patterns {
			indexGroup := re.SubexpIndex("index")
			paddingGroup := re.SubexpIndex("padding")
			for _, loc := range re.FindAllStringSubmatchIndex(item, -1) {
				start, end := loc[2*indexGroup], loc[2*indexGroup+1]
				if start < 0 {
					continue
				}
				numeral := item[start:end]
				index, err := strconv.Atoi(numeral)
				if err != nil {
					log.WithField("numeral", numeral).Debug("skipping numeral out of integer range")
					continue
				}
				padding := 0
				if ps, pe := loc[2*paddingGroup], loc[2*paddingGroup+1]; ps >= 0 && pe > ps {
					padding = len(numeral)
				}

				head, tail := item[:start], item[end:]
				key := candidateKey{head: head, tail: tail, padding: padding}
				if opts.IgnoreCase {
					key.head, key.tail = strings.ToLower(head), strings.ToLower(tail)
				}
				cd, ok := byKey[key]
				if !ok {
					cd = &candidate{key: key, collection: New(head, tail, padding), members: map[string]int{}}
					byKey[key] = cd
					order = append(order, cd)
				}
				cd.record(item, index)
			}
		}
	}

	mergeAcrossPaddingBoundary(order, log)

	var kept []*Collection
	belongs := make(map[string]bool)
	for _, cd := range order {
		fields := logrus.Fields{
			"head":    cd.collection.head,
			"tail":    cd.collection.tail,
			"padding": cd.collection.padding,
			"indexes": cd.collection.indexes.String(),
		}
		switch {
		case cd.absorbed:
			log.WithFields(fields).Debug("dropping unpadded collection absorbed by padded collection")
			continue
		case cd.collection.Count() < minimum:
			log.WithFields(fields).WithField("minimum", minimum).Debug("dropping collection below minimum size")
			continue
		}
		kept = append(kept, cd.collection)
		for item := range cd.members {
			belongs[item] = true
		}
	}

	if opts.AssumePaddedWhenAmbiguous {
		assumePadded(kept, log)
	}

	Sort(kept)
	if kept == nil {
		kept = []*Collection{}
	}
	remainder := uniqueItems(items, func(item string) bool { return !belongs[item] })
	return kept, remainder, nil
}

// assemblyPatterns resolves the patterns named by opts.
func assemblyPatterns(opts AssembleOptions) ([]*regexp.Regexp, error) {
	if opts.Patterns == nil && opts.Compiled == nil {
		return []*regexp.Regexp{digitsRegexp}, nil
	}
	out := make([]*regexp.Regexp, 0, len(opts.Patterns)+len(opts.Compiled))
	for _, expr := range opts.Patterns {
		re, err := CompilePattern(expr, opts.IgnoreCase)
		if err != nil {
			return nil, err
		}
		out = append(out, re)
	}
	for _, re := range opts.Compiled {
		if err := validatePattern(re); err != nil {
			return nil, err
		}
		out = append(out, re)
	}
	return out, nil
}

// mergeAcrossPaddingBoundary folds unpadded candidates into padded ones with
// the same head and tail, e.g. 1000 and 1001 into 0998-0999. Merging only
// flows from unpadded to padded. A partially absorbed unpadded candidate
// keeps all of its own indexes.
func mergeAcrossPaddingBoundary(order []*candidate, log logrus.FieldLogger) {
	for _, padded := range order {
		if padded.key.padding == 0 {
			continue
		}
		for _, unpadded := range order {
			if unpadded.key.padding != 0 ||
				unpadded.key.head != padded.key.head ||
				unpadded.key.tail != padded.key.tail {
				continue
			}
			aligned := 0
			for item, index := range unpadded.members {
				if digitWidth(index) == padded.key.padding {
					padded.record(item, index)
					aligned++
				}
			}
			if aligned == 0 {
				continue
			}
			log.WithFields(logrus.Fields{
				"head":    padded.collection.head,
				"tail":    padded.collection.tail,
				"padding": padded.key.padding,
				"aligned": aligned,
			}).Debug("merged unpadded indexes across padding boundary")
			if aligned == len(unpadded.members) {
				unpadded.absorbed = true
			}
		}
	}
}

// assumePadded turns unpadded collections whose indexes share one digit width
// into collections padded to that width.
func assumePadded(cols []*Collection, log logrus.FieldLogger) {
	for _, c := range cols {
		if c.padding != 0 {
			continue
		}
		lo, ok := c.indexes.Min()
		if !ok {
			continue
		}
		hi, _ := c.indexes.Max()
		if width := digitWidth(lo); width == digitWidth(hi) {
			log.WithFields(logrus.Fields{
				"head":    c.head,
				"tail":    c.tail,
				"padding": width,
			}).Debug("assuming padding for ambiguous collection")
			c.SetPadding(width)
		}
	}
}

// digitWidth returns the number of decimal digits of |n|.
func digitWidth(n int) int {
	return len(strings.TrimPrefix(strconv.Itoa(n), "-"))
}

// uniqueItems returns items in first-seen order without duplicates, keeping
// only those accepted by keep (all of them when keep is nil).
func uniqueItems(items []string, keep func(string) bool) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0)
	for _, item := range items {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		if keep == nil || keep(item) {
			out = append(out, item)
		}
	}
	return out
}
