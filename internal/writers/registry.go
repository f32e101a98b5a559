package writers

import (
	"fmt"
	"io"

	"anagrams/internal/engine"
)

// FormatFunc writes an already sorted list in one format.
type FormatFunc func(w io.Writer, list []engine.Sequence) error

// Format registry (format → handler), filled from init() in anagrams.go.
var formatWriters = map[string]FormatFunc{}

// Register adds or replaces (last wins) the handler for format.
func Register(format string, fn FormatFunc) { formatWriters[format] = fn }

// Supported reports whether a handler is registered for format.
func Supported(format string) bool {
	_, ok := formatWriters[format]
	return ok
}

// Write dispatches list to the handler registered for format.
func Write(format string, w io.Writer, list []engine.Sequence) error {
	fn, ok := formatWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, list)
}
