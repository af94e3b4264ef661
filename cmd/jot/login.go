package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the session",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		pass, err := promptPassword(cmd, "Password: ")
		if err != nil {
			fatal("Failed to read password", err)
		}

		app := newApp(cmd.Context())
		sess, err := app.Login(cmd.Context(), loginEmail, string(pass))
		if err != nil {
			fatal("Login failed", err)
		}
		fmt.Printf("Logged in as %s <%s>\n", sess.Identity.Name, sess.Identity.Email)
	},
}

func promptPassword(cmd *cobra.Command, prompt string) ([]byte, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.OutOrStdout())
	return pass, err
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.MarkFlagRequired("email")
}
