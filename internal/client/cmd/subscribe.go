package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindverse/mindverse/internal/subscription"
)

func newSubscribeCmd(serverURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe [plan]",
		Short: "Redeem an interpretation pack (no arg lists the plans)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, p := range subscription.Plans() {
					fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-10s %d interpretations, ₺%d\n",
						p.ID, p.Name, p.Interpretations, p.Price)
				}
				return nil
			}
			sess, err := authedSession(*serverURL)
			if err != nil {
				return err
			}
			credits, err := sess.Subscribe(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Subscription successful. Credits: %d\n", credits)
			return nil
		},
	}
}
