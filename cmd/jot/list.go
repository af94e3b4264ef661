package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/jotlabs/jot"
)

var (
	listJSON  bool
	listMatch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes from the server",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app := newApp(cmd.Context())
		requireSession(app)

		if err := app.Notes.FetchAll(cmd.Context()); err != nil {
			fatal("Failed to fetch notes", err)
		}

		// Filter
		var filtered []jot.Note
		for _, note := range app.Notes.Notes() {
			if listMatch != "" {
				ok, err := doublestar.Match(listMatch, note.Title)
				if err != nil {
					fatal("Invalid match pattern", err)
				}
				if !ok {
					continue
				}
			}
			filtered = append(filtered, note)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(filtered); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, note := range filtered {
			fmt.Printf("%s  %s\n", note.ID, note.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Filter notes by title glob")
}
