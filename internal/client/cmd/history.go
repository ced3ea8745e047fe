package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindverse/mindverse/internal/client/history"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "history", Short: "Manage the local dream history"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show saved dreams, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			dreams := history.NewStore("").List()
			if len(dreams) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No dreams saved yet")
				return nil
			}
			for _, d := range dreams {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  [%s] %s\n  %s\n\n",
					d.Date.Format("2006-01-02 15:04"), d.ID, d.Content, d.Interpretation)
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved dream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := history.NewStore("").Remove(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		},
	})
	return cmd
}
