// Package cmd implements the dreams CLI commands.
package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var serverURL string
	root := &cobra.Command{
		Use:   "dreams",
		Short: "Dream journal CLI",
	}
	root.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Server base URL")

	root.AddCommand(newSignUpCmd(&serverURL))
	root.AddCommand(newSignInCmd(&serverURL))
	root.AddCommand(newInterpretCmd(&serverURL))
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newProfileCmd(&serverURL))
	root.AddCommand(newSubscribeCmd(&serverURL))
	root.AddCommand(newThemeCmd())
	return root
}

func tokenPath() string {
	home, _ := os.UserHomeDir()
	return home + string(os.PathSeparator) + ".mindverse_token"
}

func saveToken(token string) error {
	return os.WriteFile(tokenPath(), []byte(token), 0600)
}

func loadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
