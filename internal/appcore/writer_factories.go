package appcore

import (
	"io"

	"anagrams/internal/engine"
	"anagrams/internal/writers"
)

// WriterFactory starts the goroutine that renders sequences to out.
type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- engine.Sequence, <-chan error)
}

// FormatWriterFactory writes sorted sequences in one registered format.
type FormatWriterFactory struct {
	Format string
}

func NewFormatWriterFactory(format string) FormatWriterFactory {
	return FormatWriterFactory{Format: format}
}

func (w FormatWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Sequence, <-chan error) {
	return writers.StartWriter(out, w.Format, bufSize)
}
