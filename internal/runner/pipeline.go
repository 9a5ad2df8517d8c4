package runner

import (
	"errors"
	"io"

	"github.com/xdg/runline/internal/patterns"
	"github.com/xdg/runline/internal/rlog"
)

// Sink receives forwarded output lines and pipeline diagnostics.
type Sink interface {
	Trace(format string, args ...any)
	Status(format string, args ...any)
	Warn(format string, args ...any)
}

var _ Sink = (*rlog.Logger)(nil)

// MapFunc transforms a line before forwarding. Returning keep=false
// drops the line; this is explicit so that an empty output string
// remains a valid line.
type MapFunc func(line string) (out string, keep bool)

// PipeConfig configures one stream's decode/filter/transform pipeline.
// The zero value forwards every line unchanged at status severity.
type PipeConfig struct {
	// Include, when set, drops every line it does not match before any
	// further processing.
	Include patterns.Matcher

	// Map, when set, transforms each surviving line and may drop it.
	Map MapFunc

	// Prefix is prepended to every forwarded line.
	Prefix string

	// Trace forwards lines at trace severity instead of status.
	Trace bool

	// StrictDecode turns malformed UTF-8 into a fatal DecodeError
	// instead of replacing it with U+FFFD.
	StrictDecode bool
}

// drainPipe runs one stream's pipeline to end-of-data: decode into
// lines, apply the inclusion matcher and mapping function, then forward
// surviving lines to the sink with the configured prefix and severity.
// Line order is preserved; the reader is consumed fully even when every
// line is dropped.
func drainPipe(r io.Reader, stream string, cfg PipeConfig, sink Sink) error {
	warned := false
	err := forEachLine(r, func(line string) error {
		clean, valid := sanitizeLine(line)
		if !valid {
			if cfg.StrictDecode {
				return &DecodeError{Stream: stream, Err: errors.New("malformed UTF-8 sequence")}
			}
			// Recovered locally, but never silently: one diagnostic
			// per stream.
			if !warned {
				sink.Warn("%s: replaced malformed UTF-8 in output", stream)
				warned = true
			}
		}

		if cfg.Include != nil && !cfg.Include.MatchLine(clean) {
			return nil
		}
		if cfg.Map != nil {
			mapped, keep := cfg.Map(clean)
			if !keep {
				return nil
			}
			clean = mapped
		}

		if cfg.Trace {
			sink.Trace("%s%s", cfg.Prefix, clean)
		} else {
			sink.Status("%s%s", cfg.Prefix, clean)
		}
		return nil
	})
	if err != nil {
		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) {
			return err
		}
		return &DecodeError{Stream: stream, Err: err}
	}
	return nil
}
