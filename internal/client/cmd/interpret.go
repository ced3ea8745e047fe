package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mindverse/mindverse/internal/client/history"
)

func newInterpretCmd(serverURL *string) *cobra.Command {
	var language string
	cmd := &cobra.Command{
		Use:   "interpret <dream text>",
		Short: "Interpret a dream and save it to the local history",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := authedSession(*serverURL)
			if err != nil {
				return err
			}
			dreamText := strings.Join(args, " ")
			interpretation, credits, err := sess.Interpret(cmd.Context(), dreamText, language)
			if err != nil {
				return err
			}
			store := history.NewStore("")
			if _, err := store.Append(history.NewDream(dreamText, interpretation, language)); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not save to history: %v\n", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), interpretation)
			fmt.Fprintf(cmd.OutOrStdout(), "\nCredits remaining: %d\n", credits)
			return nil
		},
	}
	cmd.Flags().StringVarP(&language, "language", "l", "en", "Interpretation language tag")
	return cmd
}
