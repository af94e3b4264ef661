package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	registerName  string
	registerEmail string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account on the server",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		pass, err := promptPassword(cmd, "Password: ")
		if err != nil {
			fatal("Failed to read password", err)
		}

		app := newApp(cmd.Context())
		sess, err := app.Register(cmd.Context(), registerName, registerEmail, string(pass))
		if err != nil {
			fatal("Registration failed", err)
		}
		fmt.Printf("Registered as %s <%s>\n", sess.Identity.Name, sess.Identity.Email)
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.MarkFlagRequired("name")
	registerCmd.MarkFlagRequired("email")
}
