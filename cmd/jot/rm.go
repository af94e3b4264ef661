package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := newApp(cmd.Context())
		requireSession(app)

		if err := app.Notes.Delete(cmd.Context(), args[0]); err != nil {
			fatal("Failed to delete note", err)
		}
		fmt.Printf("Note '%s' deleted.\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
