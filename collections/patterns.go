package collections

import (
	"regexp"

	"github.com/pkg/errors"
)

// DigitsPattern matches an index with optional zero padding. Every assembly
// pattern must contain it exactly once: the named group "index" holds the
// numeral and the nested group "padding" its leading zeros.
const DigitsPattern = `(?P<index>(?P<padding>0*)\d+)`

// Common assembly patterns.
const (
	// FramesPattern matches a dot-delimited frame number in front of the
	// extension, e.g. the 0001 in "shot.0001.exr".
	FramesPattern = `\.` + DigitsPattern + `\.\D+\d?$`

	// VersionsPattern matches a "v"-prefixed version number, e.g. the 03 in
	// "asset_v03.ma".
	VersionsPattern = `v` + DigitsPattern
)

// NamedPattern returns the common pattern registered under name ("frames" or
// "versions").
func NamedPattern(name string) (string, bool) {
	switch name {
	case "frames":
		return FramesPattern, true
	case "versions":
		return VersionsPattern, true
	}
	return "", false
}

// digitsRegexp is the default assembly pattern.
var digitsRegexp = regexp.MustCompile(DigitsPattern)

// CompilePattern compiles expr as an assembly pattern, case-insensitively when
// ignoreCase is set. Returns an error wrapping [ErrInvalidPattern] if expr
// does not compile or lacks the index/padding groups.
func CompilePattern(expr string, ignoreCase bool) (*regexp.Regexp, error) {
	if ignoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPattern, "compile %q: %v", expr, err)
	}
	if err := validatePattern(re); err != nil {
		return nil, err
	}
	return re, nil
}

func validatePattern(re *regexp.Regexp) error {
	if re == nil {
		return errors.Wrap(ErrInvalidPattern, "nil pattern")
	}
	if re.SubexpIndex("index") < 0 || re.SubexpIndex("padding") < 0 {
		return errors.Wrapf(ErrInvalidPattern,
			"%q must contain the named groups index and padding", re.String())
	}
	return nil
}
