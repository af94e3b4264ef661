package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotlabs/jot"
)

var editText string

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update a note",
	Long: `Update a note with new raw text. Without --text the command prints
the note's editable form, which round-trips back through add-style
splitting.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := newApp(cmd.Context())
		requireSession(app)

		if err := app.Notes.FetchAll(cmd.Context()); err != nil {
			fatal("Failed to fetch notes", err)
		}

		id := args[0]
		if editText == "" {
			note, ok := app.Notes.Get(id)
			if !ok {
				fmt.Fprintf(os.Stderr, "Note '%s' not found.\n", id)
				os.Exit(1)
			}
			fmt.Println(jot.EditSeed(note.Title, note.Content))
			return
		}

		note, err := app.Notes.Update(cmd.Context(), id, editText)
		if err != nil {
			fatal("Failed to update note", err)
		}
		if note.ID == "" {
			fmt.Println("Note updated.")
			return
		}
		fmt.Printf("Note '%s' updated.\n", note.Title)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editText, "text", "t", "", "New raw text for the note")
}
