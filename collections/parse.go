package collections

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/hasbyte1/go-clique/indexset"
)

// placeholderExprs maps each template placeholder to the sub-expression that
// captures it in [Parse].
var placeholderExprs = []struct {
	name string
	expr string
}{
	{"head", `.*`},
	{"tail", `.*`},
	{"padding", `%(?P<padding>\d*)d`},
	{"range", `(?P<range>\d+-\d+)?`},
	{"ranges", `(?P<ranges>[\d ,\-]+)?`},
	{"holes", `(?P<holes>[\d ,\-]+)`},
}

// Parse builds a Collection from value as rendered by [Collection.Format]
// with the same template. With no pattern, [DefaultFormat] is used:
//
//	c, err := collections.Parse("/head.%04d.ext [1-3, 7, 9-12]")
//	c, err := collections.Parse("/head.%04d.ext [1-12]", "{head}{padding}{tail} [{range}]")
//
// A template without {head} or {tail} yields an empty head or tail, and one
// without {padding} (or with "%d") yields padding 0. Indexes from {range} and
// {ranges} are added, then indexes from {holes} are removed.
//
// Returns an error wrapping [ErrValueMismatch] if value does not fit the
// template, and a [*CollectionError] wrapping [ErrNotPresent] if a hole is
// not among the parsed indexes.
func Parse(value string, pattern ...string) (*Collection, error) {
	tmpl := DefaultFormat
	if len(pattern) > 0 {
		tmpl = pattern[0]
	}

	re, err := compileTemplate(tmpl)
	if err != nil {
		return nil, err
	}
	loc := re.FindStringSubmatchIndex(value)
	if loc == nil {
		return nil, errors.Wrapf(ErrValueMismatch, "%q against %q", value, tmpl)
	}
	group := func(name string) (string, bool) {
		i := re.SubexpIndex(name)
		if i < 0 || loc[2*i] < 0 {
			return "", false
		}
		return value[loc[2*i]:loc[2*i+1]], true
	}

	head, _ := group("head")
	tail, _ := group("tail")
	padding := 0
	if width, ok := group("padding"); ok && width != "" {
		if padding, err = strconv.Atoi(width); err != nil {
			return nil, errors.Wrapf(ErrValueMismatch, "padding %q: %v", width, err)
		}
	}
	c := New(head, tail, padding)

	if text, ok := group("range"); ok {
		run, err := parseRun(text)
		if err != nil {
			return nil, err
		}
		values, err := expand(run)
		if err != nil {
			return nil, err
		}
		c.indexes.Update(values...)
	}
	if text, ok := group("ranges"); ok {
		runs, err := parseRuns(text)
		if err != nil {
			return nil, err
		}
		for _, run := range runs {
			values, err := expand(run)
			if err != nil {
				return nil, err
			}
			c.indexes.Update(values...)
		}
	}
	if text, ok := group("holes"); ok {
		runs, err := parseRuns(text)
		if err != nil {
			return nil, err
		}
		for _, run := range runs {
			values, err := expand(run)
			if err != nil {
				return nil, err
			}
			for _, n := range values {
				if err := c.indexes.Remove(n); err != nil {
					return nil, &CollectionError{Op: "parse", Item: strconv.Itoa(n), Err: ErrNotPresent, Cause: err}
				}
			}
		}
	}
	return c, nil
}

// compileTemplate turns a Format template into an anchored expression. Only
// the first occurrence of a placeholder captures; repeats must match the same
// shape but are not captured.
func compileTemplate(tmpl string) (*regexp.Regexp, error) {
	expr := regexp.QuoteMeta(tmpl)
	for _, p := range placeholderExprs {
		quoted := regexp.QuoteMeta("{" + p.name + "}")
		captured := p.expr
		if p.name == "head" || p.name == "tail" {
			captured = "(?P<" + p.name + ">" + p.expr + ")"
		}
		expr = strings.Replace(expr, quoted, captured, 1)
		expr = strings.ReplaceAll(expr, quoted, "(?:"+uncaptured(p.expr)+")")
	}
	re, err := regexp.Compile("^" + expr + "$")
	if err != nil {
		return nil, errors.Wrapf(ErrValueMismatch, "template %q: %v", tmpl, err)
	}
	return re, nil
}

var namedGroup = regexp.MustCompile(`\(\?P<\w+>`)

// uncaptured strips group names from expr.
func uncaptured(expr string) string {
	return namedGroup.ReplaceAllString(expr, "(?:")
}

// parseRuns reads comma-separated parts, each a single integer or
// "start-end".
func parseRuns(text string) ([]indexset.Run, error) {
	parts := strings.Split(text, ",")
	runs := make([]indexset.Run, 0, len(parts))
	for _, part := range parts {
		run, err := parseRun(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func parseRun(text string) (indexset.Run, error) {
	bounds := strings.SplitN(text, "-", 2)
	start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
	if err != nil {
		return indexset.Run{}, errors.Wrapf(ErrValueMismatch, "index %q", text)
	}
	end := start
	if len(bounds) == 2 {
		if end, err = strconv.Atoi(strings.TrimSpace(bounds[1])); err != nil {
			return indexset.Run{}, errors.Wrapf(ErrValueMismatch, "index range %q", text)
		}
	}
	return indexset.Run{Start: start, End: end}, nil
}

// MaxParsedRun caps how many indexes a single parsed run may expand to.
const MaxParsedRun = 1 << 24

// expand lists every integer of run; a reversed run is empty. Runs longer
// than [MaxParsedRun] wrap [ErrValueMismatch].
func expand(run indexset.Run) ([]int, error) {
	size := run.Len()
	if size == 0 {
		return nil, nil
	}
	if size > MaxParsedRun {
		return nil, errors.Wrapf(ErrValueMismatch, "index range %v covers more than %d indexes", run, MaxParsedRun)
	}
	out := make([]int, 0, size)
	for n := run.Start; ; n++ {
		out = append(out, n)
		if n == run.End {
			break
		}
	}
	return out, nil
}
