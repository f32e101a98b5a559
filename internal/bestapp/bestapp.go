// Package bestapp implements anagrams-best: print the anagram of WORD with
// the most words and one two-word anagram.
package bestapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"anagrams/internal/app"
	"anagrams/internal/appcore"
	"anagrams/internal/best"
	"anagrams/internal/cli"
	"anagrams/internal/writers"
)

var Tool = cli.Tool{
	Name:  "anagrams-best",
	Short: "Print the anagram of WORD with the most words and one two-word anagram",
	Long: `Print the anagram of WORD with the most words on the first line and one
anagram of exactly two words on the second. Both lines are empty when WORD
has no two-word anagram in WORD_LIST_FILE.`,
	Example: `  anagrams-best infinite words.txt
  anagrams-best -n 1 incredible words.txt.gz`,
	Args: []string{"WORD", "WORD_LIST_FILE"},
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	opts, err := cli.ParseArgs(Tool, argv, outw)
	if err != nil {
		return app.Usage(Tool, err, outw, stderr)
	}

	log := appcore.NewLogger(stderr, opts.Config)
	core := appcore.OptionsFromConfig(opts.Arg(0), opts.Arg(1), opts.Config)
	res, err := appcore.SearchContext(parent, core, log)
	if errors.Is(err, context.Canceled) || parent.Err() != nil {
		return appcore.ExitCancelled
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return appcore.ExitCode(err)
	}

	most, two := best.Pick(res.Sequences)
	fmt.Fprintf(outw, "%s\n%s\n", most, two)
	if e := writers.Flush(outw); e != nil {
		fmt.Fprintln(stderr, e)
		return appcore.ExitWrite
	}
	if two == "" {
		return core.NoMatchExitCode
	}
	return appcore.ExitOK
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
