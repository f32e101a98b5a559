package writers

import (
	"io"

	"anagrams/internal/engine"
	"anagrams/internal/output"
)

func init() {
	Register(output.FormatText, func(w io.Writer, list []engine.Sequence) error {
		lines := make([]string, 0, len(list))
		for _, s := range list {
			lines = append(lines, s.String())
		}
		return output.WriteText(w, lines)
	})
	Register(output.FormatJSON, output.WriteJSON)
	Register(output.FormatJSONL, output.WriteJSONL)
	Register(output.FormatYAML, output.WriteYAML)
}

// StartWriter spins up a writer goroutine. Sequences sent on the returned
// channel are buffered, sorted by their joined text once the channel is
// closed, and written in format. The error channel yields exactly once.
func StartWriter(out io.Writer, format string, bufSize int) (chan<- engine.Sequence, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Sequence, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var buf []engine.Sequence
		for s := range in {
			buf = append(buf, s)
		}
		output.Sort(buf)
		errCh <- Write(format, out, buf)
	}()

	return in, errCh
}
