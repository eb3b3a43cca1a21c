package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
	envFile    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	customize := &customizeOptions{}

	cmd := &cobra.Command{
		Use:           "teecraft",
		Short:         "Teecraft is a terminal T-shirt customizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the customizer.
			if len(args) == 0 {
				return runCustomizeCmd(cmd, flags, *customize)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "Path to a .env file with TEECRAFT_* overrides")
	bindCustomizeFlags(cmd, customize)

	cmd.AddCommand(newCustomizeCmd(flags))
	cmd.AddCommand(newSubmitCmd(flags))
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
