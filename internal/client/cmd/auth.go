package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mindverse/mindverse/internal/client/session"
)

func newSignUpCmd(serverURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "signup",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, err := promptEmail(cmd)
			if err != nil {
				return err
			}
			password, err := promptPassword(cmd, "Password: ")
			if err != nil {
				return err
			}
			confirm, err := promptPassword(cmd, "Confirm password: ")
			if err != nil {
				return err
			}
			sess := session.New(*serverURL)
			if err := sess.SignUp(cmd.Context(), email, string(password), string(confirm)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Account created. You have 1 free interpretation.")
			return nil
		},
	}
}

func newSignInCmd(serverURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "signin",
		Short: "Sign in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, err := promptEmail(cmd)
			if err != nil {
				return err
			}
			password, err := promptPassword(cmd, "Password: ")
			if err != nil {
				return err
			}
			sess := session.New(*serverURL)
			if err := sess.SignIn(cmd.Context(), email, string(password)); err != nil {
				return err
			}
			if err := saveToken(sess.Token()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed in")
			return nil
		},
	}
}

func promptEmail(cmd *cobra.Command) (string, error) {
	reader := bufio.NewReader(cmd.InOrStdin())
	fmt.Fprint(cmd.OutOrStdout(), "Email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(email), nil
}

func promptPassword(cmd *cobra.Command, prompt string) ([]byte, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.OutOrStdout())
	return pass, err
}

// authedSession builds a session carrying the stored token.
func authedSession(serverURL string) (*session.Session, error) {
	token, err := loadToken()
	if err != nil {
		return nil, fmt.Errorf("not signed in (run: dreams signin)")
	}
	sess := session.New(serverURL)
	sess.SetToken(token)
	return sess, nil
}
