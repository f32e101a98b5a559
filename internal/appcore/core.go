// Package appcore runs one anagram search end to end: load the word list,
// search, and write the result. It owns worker defaults and exit codes.
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"anagrams/internal/config"
	"anagrams/internal/finder"
	"anagrams/internal/logging"
	"anagrams/internal/runutil"
	"anagrams/internal/wordlist"
	"anagrams/internal/writers"
)

// Exit codes
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitWrite     = 3
	ExitCancelled = 130
)

// Options describes one run.
type Options struct {
	Word     string
	WordList string

	Method    finder.Method
	Workers   int // 0 = all CPUs
	ChunkSize int
	Normalize string

	NoMatchExitCode int
}

// OptionsFromConfig fills the tuning fields of Options from c.
func OptionsFromConfig(word, list string, c config.Config) Options {
	return Options{
		Word:            word,
		WordList:        list,
		Method:          finder.Method(c.Method),
		Workers:         c.NProcs,
		ChunkSize:       c.ChunkSize,
		Normalize:       c.Normalize,
		NoMatchExitCode: c.NoMatchExitCode,
	}
}

// NewLogger builds the stderr logger for c.
func NewLogger(stderr io.Writer, c config.Config) *logging.Logger {
	return logging.NewLogger(stderr, c.Logging.Level, c.Logging.Format)
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCancelled
	case errors.Is(err, wordlist.ErrUnavailable), errors.Is(err, finder.ErrInvalidStrategy):
		return ExitUsage
	default:
		return ExitWrite
	}
}

// Search loads the word list and returns every anagram of o.Word. The word
// gets the same normalization as the list.
func Search(o Options, log *logging.Logger) (finder.Result, error) {
	if _, err := finder.ParseMethod(string(o.Method)); err != nil {
		return finder.Result{}, err
	}
	tr, err := wordlist.Normalizer(o.Normalize)
	if err != nil {
		return finder.Result{}, err
	}
	words, err := wordlist.Load(o.WordList, wordlist.Options{Normalize: o.Normalize})
	if err != nil {
		return finder.Result{}, err
	}
	return finder.Find(tr(o.Word), words, finder.Options{
		Method:    o.Method,
		Workers:   runutil.EffectiveWorkers(o.Workers),
		ChunkSize: o.ChunkSize,
		Logger:    log,
	})
}

// search is replaced in tests.
var search = Search

// SearchContext runs Search on its own goroutine and returns ctx.Err() as
// soon as ctx is done. The search itself cannot be interrupted; an
// abandoned one keeps running until the process exits.
func SearchContext(ctx context.Context, o Options, log *logging.Logger) (finder.Result, error) {
	type outcome struct {
		res finder.Result
		err error
	}
	fn := search
	done := make(chan outcome, 1)
	go func() {
		res, err := fn(o, log)
		done <- outcome{res, err}
	}()
	select {
	case r := <-done:
		return r.res, r.err
	case <-ctx.Done():
		return finder.Result{}, ctx.Err()
	}
}

// Run searches and writes the sorted result to the new file outPath.
// Once ctx is done Run returns ExitCancelled without waiting for the
// search, and no file is created.
func Run(ctx context.Context, stderr io.Writer, o Options, outPath string, wf WriterFactory, log *logging.Logger) int {
	if log == nil {
		log = logging.NopLogger()
	}
	fail := func(err error) int {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitCode(err)
	}

	// Fail before the search, not after it.
	if err := writers.CheckAbsent(outPath); err != nil {
		return fail(err)
	}

	res, err := SearchContext(ctx, o, log)
	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return ExitCancelled
	}
	if err != nil {
		return fail(err)
	}

	f, err := writers.CreateExclusive(outPath)
	if err != nil {
		return fail(err)
	}
	outw := bufio.NewWriter(f)

	inCh, writeErr := wf.Start(outw, runutil.WriterBuffer(runutil.EffectiveWorkers(o.Workers)))
	for _, s := range res.Sequences {
		inCh <- s
	}
	close(inCh)

	werr := <-writeErr
	if werr == nil {
		werr = outw.Flush()
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(outPath)
		return fail(fmt.Errorf("write %s: %w", outPath, werr))
	}
	log.Debug("wrote result", "path", outPath, "anagrams", len(res.Sequences))

	if len(res.Sequences) == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}
