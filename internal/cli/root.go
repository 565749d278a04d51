// Package cli implements the sepstr command line tool.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bjaus/sepstr"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNoInput = errors.New("no input: pass values as arguments or pipe them on stdin")

// options holds the format flags shared by every subcommand.
type options struct {
	preset     string
	configPath string

	separator  string
	wrap       string
	wrapBefore string
	wrapAfter  string
	escape     string
	kvSep      string
	prefix     string
	suffix     string
	empty      string
	null       string
	loop       string
	lineStart  string
	lineEnd    string
	trim       bool
	unique     bool

	verbose bool
	logger  *slog.Logger
}

// Execute runs the command line and returns the process exit code.
func Execute(version string) int {
	cmd := NewRootCommand(version)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
		return 1
	}
	return 0
}

// NewRootCommand builds the sepstr command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "sepstr",
		Short:         "Encode and decode separated strings.",
		Long:          "sepstr joins values into one delimited string and splits such strings back into values, rows or key-value pairs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.preset, "preset", "p", "", "start from a preset (see 'sepstr presets')")
	pf.StringVarP(&opts.configPath, "config", "c", "", "read settings from a .yaml or .toml file")
	pf.StringVarP(&opts.separator, "separator", "s", " ", `separator between values (\t, \n and \r are interpreted)`)
	pf.StringVar(&opts.wrap, "wrap", "", "sequence placed before and after each value")
	pf.StringVar(&opts.wrapBefore, "wrap-before", "", "sequence placed before each value")
	pf.StringVar(&opts.wrapAfter, "wrap-after", "", "sequence placed after each value")
	pf.StringVarP(&opts.escape, "escape", "e", "", "escape sequence")
	pf.StringVar(&opts.kvSep, "kv-separator", "", "separator between a key and its value")
	pf.StringVar(&opts.prefix, "prefix", "", "text placed before the whole result")
	pf.StringVar(&opts.suffix, "suffix", "", "text placed after the whole result")
	pf.StringVar(&opts.empty, "empty", "", "text used for empty values and empty results")
	pf.StringVar(&opts.null, "null", "", "render nulls as this text")
	pf.StringVar(&opts.loop, "loop", "", "loop mode: none, closed or open")
	pf.StringVar(&opts.lineStart, "line-start", "", "sequence emitted at the start of each row")
	pf.StringVar(&opts.lineEnd, "line-end", "", `sequence emitted at the end of each row (default \n once a row is added)`)
	pf.BoolVar(&opts.trim, "trim", false, "skip blank values and trim spaces")
	pf.BoolVar(&opts.unique, "unique", false, "keep only the first occurrence of each value")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug details to stderr")

	root.AddCommand(
		newEncodeCommand(opts),
		newDecodeCommand(opts),
		newDescribeCommand(opts),
		newPresetsCommand(),
		newVersionCommand(version),
	)
	return root
}

// builder resolves the effective configuration: preset, then config file,
// then any flag set explicitly on the command line.
func (o *options) builder(cmd *cobra.Command) (sepstr.Builder, error) {
	b := sepstr.NewBuilder()
	if o.preset != "" {
		p, err := sepstr.ParsePreset(o.preset)
		if err != nil {
			return b, err
		}
		b = p.Builder()
		o.log().Debug("using preset", "preset", p)
	}

	if o.configPath != "" {
		f, err := sepstr.ConfigFormatFromPath(o.configPath)
		if err != nil {
			return b, err
		}
		file, err := os.Open(o.configPath)
		if err != nil {
			return b, err
		}
		defer file.Close()
		if b, err = b.Overlay(file, f); err != nil {
			return b, fmt.Errorf("%s: %w", o.configPath, err)
		}
		o.log().Debug("loaded config", "path", o.configPath, "format", f)
	}

	flags := cmd.Flags()
	if flags.Changed("separator") {
		if sep := unescapeFlag(o.separator); sep == "" {
			b = b.WithoutSeparator()
		} else {
			b = b.SeparatedBy(sep)
		}
	}
	if flags.Changed("wrap") {
		b = b.WithWrap(o.wrap)
	}
	if flags.Changed("wrap-before") {
		b = b.WithWrapBefore(o.wrapBefore)
	}
	if flags.Changed("wrap-after") {
		b = b.WithWrapAfter(o.wrapAfter)
	}
	if flags.Changed("escape") {
		b = b.WithEscape(o.escape)
	}
	if flags.Changed("kv-separator") {
		b = b.WithKeyValueSeparator(o.kvSep)
	}
	if flags.Changed("prefix") {
		b = b.WithPrefix(unescapeFlag(o.prefix))
	}
	if flags.Changed("suffix") {
		b = b.WithSuffix(unescapeFlag(o.suffix))
	}
	if flags.Changed("empty") {
		b = b.UseWhenEmpty(o.empty)
	}
	if flags.Changed("null") {
		b = b.WithNullsAs(o.null)
	}
	if flags.Changed("loop") {
		m, err := sepstr.ParseLoopMode(o.loop)
		if err != nil {
			return b, err
		}
		b = b.WithLoop(m)
	}
	if flags.Changed("line-start") {
		b = b.WithLineStart(unescapeFlag(o.lineStart))
	}
	if flags.Changed("line-end") {
		b = b.WithLineEnd(unescapeFlag(o.lineEnd))
	}
	if o.trim {
		b = b.WithBlanksTrimmed()
	}
	if o.unique {
		b = b.WithOnlyUniqueValues()
	}
	return b, nil
}

func (o *options) log() *slog.Logger {
	if o.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.logger
}

var flagReplacer = strings.NewReplacer(`\t`, "\t", `\n`, "\n", `\r`, "\r")

// unescapeFlag interprets \t, \n and \r typed on the command line.
func unescapeFlag(s string) string {
	return flagReplacer.Replace(s)
}

// stdinInput returns r unless it is an interactive terminal, in which case
// reading would block waiting for the user.
func stdinInput(r io.Reader) (io.Reader, error) {
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errNoInput
	}
	return r, nil
}
