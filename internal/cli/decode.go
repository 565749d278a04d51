package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/bjaus/sepstr"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// output names how decoded results are printed.
type output string

const (
	outputList output = "list"
	outputJSON output = "json"
	outputYAML output = "yaml"
)

func newDecodeCommand(opts *options) *cobra.Command {
	var (
		lines  bool
		asMap  bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "decode [input]",
		Short: "Split a separated string into values",
		Long: `Split a separated string into values.

The input is the argument or, when there is none, all of standard input
with one trailing newline removed. By default values are printed one per
line; --lines prints one row per line with tab-separated values and --map
prints key=value pairs sorted by key. Rows end in \n unless --line-end or
the configuration says otherwise.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output(format)
			switch out {
			case outputList, outputJSON, outputYAML:
			default:
				return fmt.Errorf("unsupported output %q", format)
			}

			b, err := opts.builder(cmd)
			if err != nil {
				return err
			}
			if lines && b.Build().LineEnd == "" {
				b = b.WithLineEnd(sepstr.DefaultLineEnd)
			}
			dec := b.Decoder()

			var input string
			if len(args) == 1 {
				input = args[0]
			} else {
				in, err := stdinInput(cmd.InOrStdin())
				if err != nil {
					return err
				}
				data, err := io.ReadAll(in)
				if err != nil {
					return err
				}
				input = strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")
			}

			w := cmd.OutOrStdout()
			switch {
			case asMap:
				m := dec.DecodeToMap(input)
				opts.log().Debug("decoded map", "keys", len(m))
				return writeMap(w, out, m)
			case lines:
				rows := dec.DecodeToLines(input)
				opts.log().Debug("decoded rows", "rows", len(rows))
				return writeRows(w, out, rows)
			default:
				values := dec.Decode(input)
				opts.log().Debug("decoded values", "values", len(values))
				return writeValues(w, out, values)
			}
		},
	}
	cmd.Flags().BoolVar(&lines, "lines", false, "group values into rows")
	cmd.Flags().BoolVar(&asMap, "map", false, "split values into key-value pairs")
	cmd.Flags().StringVarP(&format, "output", "o", string(outputList), "output format: list, json or yaml")
	cmd.MarkFlagsMutuallyExclusive("lines", "map")
	return cmd
}

func writeValues(w io.Writer, out output, values []string) error {
	if out != outputList {
		return writeStructured(w, out, values)
	}
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

func writeRows(w io.Writer, out output, rows [][]string) error {
	if out != outputList {
		return writeStructured(w, out, rows)
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

func writeMap(w io.Writer, out output, m map[string]string) error {
	if out != outputList {
		return writeStructured(w, out, m)
	}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if _, err := fmt.Fprintf(w, "%s=%s\n", k, m[k]); err != nil {
			return err
		}
	}
	return nil
}

func writeStructured(w io.Writer, out output, v any) error {
	switch out {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output %q", out)
	}
}
