package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProfileCmd(serverURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show account email and remaining credits",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := authedSession(*serverURL)
			if err != nil {
				return err
			}
			p, err := sess.Profile(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Email:   %s\nJoined:  %s\nCredits: %d\n",
				p.Email, p.CreatedAt.Format("2006-01-02"), p.InterpretationCredits)
			return nil
		},
	}
}
