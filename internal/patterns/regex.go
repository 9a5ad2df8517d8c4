package patterns

import (
	"fmt"
	"regexp"
)

// RegexMatcher implements Matcher using a compiled regular expression.
// A line is kept when the expression matches anywhere in the line.
type RegexMatcher struct {
	regex   *regexp.Regexp
	pattern string
}

// NewRegexMatcher compiles pattern into a RegexMatcher.
// An invalid pattern is an error; unlike config-driven pattern lists,
// a matcher passed by a caller has no sensible fallback.
func NewRegexMatcher(pattern string) (*RegexMatcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile line pattern %q: %w", pattern, err)
	}
	return &RegexMatcher{regex: re, pattern: pattern}, nil
}

// MatchLine reports whether the expression matches the line.
func (m *RegexMatcher) MatchLine(line string) bool {
	return m.regex.MatchString(line)
}

// Pattern returns the original pattern string.
func (m *RegexMatcher) Pattern() string {
	return m.pattern
}
