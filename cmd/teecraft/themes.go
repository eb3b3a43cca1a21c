package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/teecraft/internal/ui/theme"
)

func newThemesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the available themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, t := range theme.Presets() {
				fmt.Fprintf(out, "%d. %-20s %-14s %-5s primary %s\n", i+1, t.Name, t.Slug(), t.Mode, t.Palette.Primary)
			}
			return nil
		},
	}

	return cmd
}
