// Package finder wires the engine strategies to the worker pool: it
// normalizes the word, reduces the dictionary, enumerates dividers and runs
// the selected method.
package finder

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"anagrams/internal/engine"
	"anagrams/internal/logging"
	"anagrams/internal/pipeline"
)

// Method selects the enumeration strategy.
type Method string

// Supported methods
const (
	// WordCentric generates candidates from permutations of the word and
	// checks them against the word list.
	WordCentric Method = "word_centric"
	// WordListCentric generates candidates from the word list and checks
	// them against the word's letters.
	WordListCentric Method = "word_list_centric"

	DefaultMethod = WordListCentric
)

// ErrInvalidStrategy is returned for a method name outside Methods().
var ErrInvalidStrategy = errors.New("invalid strategy")

// Methods lists the accepted method names.
func Methods() []string { return []string{string(WordCentric), string(WordListCentric)} }

// ParseMethod validates a method name.
func ParseMethod(name string) (Method, error) {
	if !slices.Contains(Methods(), name) {
		return "", fmt.Errorf("%w %q (want %s)", ErrInvalidStrategy, name, strings.Join(Methods(), " | "))
	}
	return Method(name), nil
}

// DefaultChunkSize is the number of work items per pool task: permutations
// are cheap and numerous, dividers are few and expensive.
func DefaultChunkSize(m Method) int {
	if m == WordCentric {
		return 8
	}
	return 1
}

// Options configures one search.
type Options struct {
	Method    Method
	Workers   int // <= 1 runs sequentially in the caller
	ChunkSize int // 0 = DefaultChunkSize(Method)
	Logger    *logging.Logger
}

// Stats describes a finished search.
type Stats struct {
	WordLength  int
	ListSize    int
	ReducedSize int
	Dividers    int
	Matches     int
	Elapsed     time.Duration
}

// Result is the raw, unordered outcome of Find.
type Result struct {
	Sequences []engine.Sequence
	Stats     Stats
}

// NormalizeWord removes all whitespace from word.
func NormalizeWord(word string) string { return strings.Join(strings.Fields(word), "") }

// Find returns every sequence of word-list entries whose letters are a
// rearrangement of word. Order is unspecified.
func Find(word string, words []string, opt Options) (Result, error) {
	if _, err := ParseMethod(string(opt.Method)); err != nil {
		return Result{}, err
	}
	log := opt.Logger
	if log == nil {
		log = logging.NopLogger()
	}
	log = log.With("method", string(opt.Method))
	start := time.Now()

	rs := []rune(NormalizeWord(word))
	reduced := engine.Reduce(rs, words)
	dividers := engine.Dividers(len(rs))
	log.Debug("prepared search",
		"word_length", len(rs),
		"word_list", humanize.Comma(int64(len(words))),
		"reduced", humanize.Comma(int64(len(reduced))),
		"dividers", humanize.Comma(int64(len(dividers))),
	)

	cfg := pipeline.Config{Workers: opt.Workers, ChunkSize: opt.ChunkSize}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize(opt.Method)
	}

	var seqs []engine.Sequence
	switch opt.Method {
	case WordCentric:
		s := &engine.WordCentric{Dividers: dividers, Words: reduced}
		seqs = pipeline.Collect(cfg, engine.Permutations(rs), s.Match)
	case WordListCentric:
		s := engine.NewDictionaryCentric(rs, reduced)
		seqs = pipeline.Collect(cfg, slices.Values(dividers), s.Match)
	}

	st := Stats{
		WordLength:  len(rs),
		ListSize:    len(words),
		ReducedSize: len(reduced),
		Dividers:    len(dividers),
		Matches:     len(seqs),
		Elapsed:     time.Since(start),
	}
	log.Info("search finished",
		"workers", cfg.Workers,
		"matches", humanize.Comma(int64(st.Matches)),
		"elapsed", st.Elapsed.Round(time.Millisecond).String(),
	)
	return Result{Sequences: seqs, Stats: st}, nil
}
