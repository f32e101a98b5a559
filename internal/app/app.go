// Package app implements the anagrams command.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"anagrams/internal/appcore"
	"anagrams/internal/cli"
	"anagrams/internal/writers"
)

// Tool is the anagrams command line.
var Tool = cli.Tool{
	Name:  "anagrams",
	Short: "Write every multi-word anagram of WORD found in WORD_LIST_FILE to OUT_FILE",
	Long: `Write every multi-word anagram of WORD found in WORD_LIST_FILE to OUT_FILE.

An anagram is an ordered sequence of word-list entries whose letters,
taken together, are exactly the letters of WORD. Whitespace in WORD is
ignored; matching is case-sensitive. Results are sorted, one per line.
OUT_FILE must not exist. WORD_LIST_FILE may be gzip-compressed or - for stdin.`,
	Example: `  anagrams eat words.txt eat.txt
  anagrams -m word_centric -n 4 incredible words.txt out.txt
  anagrams -o json infinite words.txt.gz infinite.json`,
	Args: []string{"WORD", "WORD_LIST_FILE", "OUT_FILE"},
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	opts, err := cli.ParseArgs(Tool, argv, outw)
	if err != nil {
		return Usage(Tool, err, outw, stderr)
	}

	log := appcore.NewLogger(stderr, opts.Config)
	core := appcore.OptionsFromConfig(opts.Arg(0), opts.Arg(1), opts.Config)
	writer := appcore.NewFormatWriterFactory(opts.Config.Output)
	return appcore.Run(parent, stderr, core, opts.Arg(2), writer, log)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// Usage reports a ParseArgs error: help and version exit 0, anything else
// prints the error and the usage block and exits 2.
func Usage(tool cli.Tool, err error, outw *bufio.Writer, stderr io.Writer) int {
	code := appcore.ExitUsage
	if errors.Is(err, cli.ErrHandled) {
		code = appcore.ExitOK
	} else {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		_, _ = io.WriteString(outw, cli.Usage(tool))
	}
	if e := writers.Flush(outw); e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitWrite
	}
	return code
}
