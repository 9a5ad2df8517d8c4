// Package patterns provides line matching for output filtering.
package patterns

// Matcher defines the interface for matching output lines.
// A pipeline configured with a Matcher drops every line the matcher
// rejects before any further processing.
type Matcher interface {
	// MatchLine reports whether a line should be kept.
	MatchLine(line string) bool
}

// MatchFunc adapts a plain function to the Matcher interface.
type MatchFunc func(line string) bool

// MatchLine calls f(line).
func (f MatchFunc) MatchLine(line string) bool {
	return f(line)
}
