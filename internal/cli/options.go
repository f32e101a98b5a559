// Package cli parses the command lines of the anagram tools.
package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"anagrams/internal/config"
	"anagrams/internal/finder"
	"anagrams/internal/output"
	"anagrams/internal/version"
	"anagrams/internal/wordlist"
)

// ErrHandled means help or version output was printed and there is nothing
// left to run.
var ErrHandled = errors.New("help or version printed")

// Tool describes one tool's command line.
type Tool struct {
	Name    string
	Short   string
	Long    string
	Example string
	Args    []string // required positional arguments, in order
}

// Options holds all parsed arguments and the resolved configuration.
type Options struct {
	Args       []string // positional values, in Tool.Args order
	ConfigFile string
	Config     config.Config
}

// Arg returns the i-th positional argument.
func (o Options) Arg(i int) string { return o.Args[i] }

// NewCommand builds the cobra command for tool. Flags are bound to v; run
// receives the resolved options.
func NewCommand(tool Tool, v *viper.Viper, run func(Options) error) *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:           tool.Name + " " + strings.Join(tool.Args, " "),
		Short:         tool.Short,
		Long:          tool.Long,
		Example:       tool.Example,
		Version:       version.Version,
		Args:          cobra.ExactArgs(len(tool.Args)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ReadFile(v, cfgFile); err != nil {
				return err
			}
			c, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(Options{Args: args, ConfigFile: cfgFile, Config: c})
		},
	}
	cmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")

	d := config.Default()
	fl := cmd.Flags()
	fl.SortFlags = false

	// Method
	fl.StringP("method", "m", d.Method,
		"method of computation: "+strings.Join(finder.Methods(), " | ")+
			"\n  word_centric: candidates generated from the word, checked against the word list"+
			"\n  word_list_centric: candidates generated from the word list, checked against the word")

	// Performance
	fl.IntP("nprocs", "n", d.NProcs, "max worker processes (0 = all CPUs, 1 = sequential)")
	fl.Int("chunk-size", d.ChunkSize, "work items per worker task (0 = per-method default)")

	// Input / output
	fl.StringP("output", "o", d.Output, "output format: "+strings.Join(output.Formats(), " | "))
	fl.String("normalize", d.Normalize, "Unicode normalization of word and word list: "+strings.Join(wordlist.Forms(), " | "))
	fl.Int("no-match-exit-code", d.NoMatchExitCode, "exit code when no anagram is found")

	// Misc
	fl.String("log-level", d.Logging.Level, "stderr log level: DEBUG | INFO | WARN | ERROR")
	fl.String("log-format", d.Logging.Format, "stderr log format: text | json")
	fl.BoolP("quiet", "q", false, "only log errors")
	fl.StringVar(&cfgFile, "config", "", "YAML config file (default "+config.ConfigDir()+"/anagrams.yaml)")

	bindFlags(v, fl)
	return cmd
}

// bindFlags ties each flag to its config key; a flag only wins over the
// config file and environment when it was set.
func bindFlags(v *viper.Viper, fl *pflag.FlagSet) {
	bind := map[string]string{
		config.KeyMethod:          "method",
		config.KeyNProcs:          "nprocs",
		config.KeyChunkSize:       "chunk-size",
		config.KeyOutput:          "output",
		config.KeyNormalize:       "normalize",
		config.KeyNoMatchExitCode: "no-match-exit-code",
		config.KeyLogLevel:        "log-level",
		config.KeyLogFormat:       "log-format",
		config.KeyQuiet:           "quiet",
	}
	for key, name := range bind {
		_ = v.BindPFlag(key, fl.Lookup(name))
	}
}

// ParseArgs parses argv for tool. Help and version text go to out, in which
// case ErrHandled is returned.
func ParseArgs(tool Tool, argv []string, out io.Writer) (Options, error) {
	var (
		opts Options
		ran  bool
	)
	cmd := NewCommand(tool, config.New(), func(o Options) error {
		opts, ran = o, true
		return nil
	})
	cmd.SetArgs(argv)
	cmd.SetOut(out)
	cmd.SetErr(out)
	if err := cmd.Execute(); err != nil {
		return opts, err
	}
	if !ran {
		return opts, ErrHandled
	}
	return opts, nil
}

// Usage renders the usage block of tool.
func Usage(tool Tool) string {
	var b bytes.Buffer
	cmd := NewCommand(tool, viper.New(), func(Options) error { return nil })
	cmd.SetOut(&b)
	_ = cmd.Usage()
	return b.String()
}
