package runner

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// maxLineBytes caps the size of a single decoded line. Child processes
// emitting longer lines surface a DecodeError rather than deadlocking
// or truncating silently.
const maxLineBytes = 1024 * 1024

// forEachLine incrementally reads r and invokes fn once per line, in
// order, until the byte source signals end-of-data. A trailing line
// without a final newline is delivered as the last line. Returns fn's
// first error, or the read error that ended the scan.
func forEachLine(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// sanitizeLine replaces malformed UTF-8 sequences with U+FFFD.
// The second return is false when a replacement was made.
func sanitizeLine(s string) (string, bool) {
	if utf8.ValidString(s) {
		return s, true
	}
	return strings.ToValidUTF8(s, "�"), false
}
