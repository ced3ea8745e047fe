package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindverse/mindverse/internal/client/prefs"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [name]",
		Short: "Show or set the theme preference",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := prefs.New("")
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), p.Theme())
				return nil
			}
			if err := p.SetTheme(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", args[0])
			return nil
		},
	}
}
