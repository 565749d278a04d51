package cli

import (
	"fmt"

	"github.com/bjaus/sepstr"
	"github.com/spf13/cobra"
)

func newDescribeCommand(opts *options) *cobra.Command {
	var as string
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Show the effective settings",
		Long:  "Show the settings that result from --preset, --config and the format flags. With --as the settings are printed as a config file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := opts.builder(cmd)
			if err != nil {
				return err
			}
			cfg := b.Build()
			if as == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), sepstr.Describe(cfg))
				return err
			}
			data, err := sepstr.MarshalConfig(cfg, sepstr.ConfigFormat(as))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&as, "as", "", "print as a config file: yaml or toml")
	return cmd
}

func newPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range sepstr.Presets() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), p); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of sepstr",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "sepstr", version)
		},
	}
}
