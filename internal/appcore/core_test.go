package appcore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anagrams/internal/finder"
	"anagrams/internal/logging"
	"anagrams/internal/wordlist"
	"anagrams/internal/writers"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 2, ExitCode(fmt.Errorf("x: %w", wordlist.ErrUnavailable)))
	assert.Equal(t, 2, ExitCode(fmt.Errorf("x: %w", finder.ErrInvalidStrategy)))
	assert.Equal(t, 3, ExitCode(fmt.Errorf("x: %w", writers.ErrOutputExists)))
	assert.Equal(t, 3, ExitCode(errors.New("disk full")))
	assert.Equal(t, 130, ExitCode(context.Canceled))
}

func setup(t *testing.T) (list, dir string) {
	t.Helper()
	dir = t.TempDir()
	list = filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(list, []byte("a\ne\nt\nat\nea\n"), 0o644))
	return list, dir
}

func TestRunWritesSortedYAML(t *testing.T) {
	list, dir := setup(t)
	dst := filepath.Join(dir, "out.yaml")
	o := Options{Word: "tea", WordList: list, Method: finder.WordListCentric, Workers: 2}

	var stderr bytes.Buffer
	code := Run(context.Background(), &stderr, o, dst, NewFormatWriterFactory("yaml"), nil)
	require.Equal(t, 0, code, stderr.String())

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(b), "- text: a e t\n")
	assert.Less(t, bytes.Index(b, []byte("text: a e t")), bytes.Index(b, []byte("text: t ea")))
}

func TestRunExistingOutput(t *testing.T) {
	list, dir := setup(t)
	dst := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(dst, nil, 0o644))

	var stderr bytes.Buffer
	o := Options{Word: "eat", WordList: list, Method: finder.WordCentric, Workers: 1}
	code := Run(context.Background(), &stderr, o, dst, NewFormatWriterFactory("text"), nil)
	assert.Equal(t, 3, code)
	assert.Contains(t, stderr.String(), "output already exists")
}

func TestRunUnknownFormat(t *testing.T) {
	list, dir := setup(t)
	dst := filepath.Join(dir, "out.csv")

	var stderr bytes.Buffer
	o := Options{Word: "eat", WordList: list, Method: finder.WordCentric, Workers: 1}
	code := Run(context.Background(), &stderr, o, dst, NewFormatWriterFactory("csv"), nil)
	assert.Equal(t, 3, code)
	assert.Contains(t, stderr.String(), "unknown output format")
	assert.NoFileExists(t, dst, "a failed write leaves no file behind")
}

func TestSearchNormalizesWord(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "words.txt")
	// decomposed é in the list and composed é in the word
	require.NoError(t, os.WriteFile(list, []byte("e\u0301\nt\n"), 0o644))

	o := Options{Word: "t\u00e9", WordList: list, Method: finder.WordListCentric, Workers: 1, Normalize: "nfc"}
	res, err := Search(o, nil)
	require.NoError(t, err)
	assert.Len(t, res.Sequences, 2)
}

func TestSearchInvalidMethod(t *testing.T) {
	_, err := Search(Options{Word: "eat", WordList: "ignored", Method: "brute"}, nil)
	assert.ErrorIs(t, err, finder.ErrInvalidStrategy)
}

// blockSearch makes Search hang until the test ends.
func blockSearch(t *testing.T) {
	t.Helper()
	release := make(chan struct{})
	prev := search
	search = func(Options, *logging.Logger) (finder.Result, error) {
		<-release
		return finder.Result{}, nil
	}
	t.Cleanup(func() {
		close(release)
		search = prev
	})
}

func TestRunCancelledDuringSearch(t *testing.T) {
	blockSearch(t)
	list, dir := setup(t)
	dst := filepath.Join(dir, "out.txt")
	o := Options{Word: "eat", WordList: list, Method: finder.WordCentric, Workers: 1}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	done := make(chan int, 1)
	go func() {
		var stderr bytes.Buffer
		done <- Run(ctx, &stderr, o, dst, NewFormatWriterFactory("text"), nil)
	}()

	select {
	case code := <-done:
		assert.Equal(t, 130, code)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.NoFileExists(t, dst)
}

func TestSearchContextCancelled(t *testing.T) {
	blockSearch(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := SearchContext(ctx, Options{Method: finder.WordCentric}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchContextReturnsResult(t *testing.T) {
	list, _ := setup(t)
	o := Options{Word: "eat", WordList: list, Method: finder.WordListCentric, Workers: 1}
	res, err := SearchContext(context.Background(), o, nil)
	require.NoError(t, err)
	assert.Len(t, res.Sequences, 10)
}
