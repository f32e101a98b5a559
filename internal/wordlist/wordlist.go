// Package wordlist reads the reference word list: UTF-8 text with one entry
// per line, from a file, a gzip file or stdin.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrUnavailable wraps every failure to read the word list.
var ErrUnavailable = errors.New("word list unavailable")

// Normalization forms
const (
	NormNone = "none"
	NormNFC  = "nfc"
	NormNFKC = "nfkc"
)

// Options controls how entries are read.
type Options struct {
	// Normalize is one of NormNone, NormNFC, NormNFKC.
	Normalize string
}

// Forms lists the accepted normalization names.
func Forms() []string { return []string{NormNone, NormNFC, NormNFKC} }

// Normalizer returns the string transform for form, or an error for an
// unknown name.
func Normalizer(form string) (func(string) string, error) {
	switch strings.ToLower(form) {
	case "", NormNone:
		return func(s string) string { return s }, nil
	case NormNFC:
		return norm.NFC.String, nil
	case NormNFKC:
		return norm.NFKC.String, nil
	default:
		return nil, fmt.Errorf("invalid normalization %q (want %s)", form, strings.Join(Forms(), " | "))
	}
}

// Load reads all lines of path. Lines are kept verbatim apart from the line
// terminator (a trailing "\r" is dropped) and the optional normalization;
// the search itself is case-sensitive.
func Load(path string, o Options) ([]string, error) {
	tr, err := Normalizer(o.Normalize)
	if err != nil {
		return nil, err
	}
	rc, err := openReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer rc.Close()

	words, err := Read(rc, tr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, path, err)
	}
	return words, nil
}

// Read splits r into lines and applies tr (nil = identity) to each.
func Read(r io.Reader, tr func(string) string) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), 1<<20)
	var out []string
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if tr != nil {
			line = tr(line)
		}
		out = append(out, line)
	}
	return out, sc.Err()
}
