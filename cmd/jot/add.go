package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Create a note",
	Long: `Create a note from raw text. The first line becomes the title and
the full text becomes the content.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := newApp(cmd.Context())
		requireSession(app)

		note, err := app.Notes.Create(cmd.Context(), args[0])
		if err != nil {
			fatal("Failed to create note", err)
		}
		if note.ID == "" {
			// The server accepted the note but returned an unrecognized
			// payload; the collection was refreshed instead.
			fmt.Println("Note created.")
			return
		}
		fmt.Printf("Note '%s' created (%s).\n", note.Title, note.ID)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
