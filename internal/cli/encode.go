package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newEncodeCommand(opts *options) *cobra.Command {
	var (
		lines bool
		pairs bool
	)
	cmd := &cobra.Command{
		Use:   "encode [values...]",
		Short: "Join values into one separated string",
		Long: `Join values into one separated string.

Values come from the arguments or, when there are none, one per line of
standard input. With --line each input line becomes a row of
whitespace-separated values. With --pairs each value is read as key=value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := opts.builder(cmd)
			if err != nil {
				return err
			}
			enc := b.Encoder()

			add := func(vs ...string) {
				for _, v := range vs {
					if k, val, ok := strings.Cut(v, "="); pairs && ok {
						enc.AddKeyed(k, val)
					} else {
						enc.Add(v)
					}
				}
			}

			if len(args) > 0 {
				add(args...)
			} else {
				in, err := stdinInput(cmd.InOrStdin())
				if err != nil {
					return err
				}
				sc := bufio.NewScanner(in)
				for sc.Scan() {
					if lines {
						fields := strings.Fields(sc.Text())
						row := make([]any, len(fields))
						for i, f := range fields {
							row[i] = f
						}
						enc.AddLine(row...)
						continue
					}
					add(sc.Text())
				}
				if err := sc.Err(); err != nil {
					return err
				}
			}

			opts.log().Debug("encoding", "entries", enc.Len())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), enc.Encode())
			return err
		},
	}
	cmd.Flags().BoolVar(&lines, "line", false, "treat each stdin line as a row of whitespace-separated values")
	cmd.Flags().BoolVar(&pairs, "pairs", false, "read each value as key=value")
	return cmd
}
