package output

import (
	"io"
	"strings"
)

// WriteText writes the lines separated by "\n", without a trailing newline.
// An empty list writes nothing.
func WriteText(w io.Writer, lines []string) error {
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}
