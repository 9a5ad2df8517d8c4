package patterns

import (
	"fmt"

	"github.com/gobwas/glob"
)

// GlobMatcher implements Matcher using a glob pattern.
// A line is kept when the glob matches the whole line, so patterns
// usually want leading/trailing wildcards, e.g. "*error*".
type GlobMatcher struct {
	glob    glob.Glob
	pattern string
}

// NewGlobMatcher compiles pattern into a GlobMatcher.
func NewGlobMatcher(pattern string) (*GlobMatcher, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile glob pattern %q: %w", pattern, err)
	}
	return &GlobMatcher{glob: g, pattern: pattern}, nil
}

// MatchLine reports whether the glob matches the line.
func (m *GlobMatcher) MatchLine(line string) bool {
	return m.glob.Match(line)
}

// Pattern returns the original pattern string.
func (m *GlobMatcher) Pattern() string {
	return m.pattern
}
