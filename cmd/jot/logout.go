package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the persisted session",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app := newApp(cmd.Context())
		app.Logout(cmd.Context())
		fmt.Println("Signed out.")
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
