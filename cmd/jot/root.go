package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jotlabs/jot"
	"github.com/jotlabs/jot/pkg/config"
)

var (
	verbose    bool
	serverURL  string
	dataDir    string
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "A notes client backed by a remote API",
	Long: `Jot keeps your session on disk and mirrors a note collection against
a remote server. Every mutation is confirmed by the server before the
local collection changes.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Server base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Session data directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
}

// newApp builds the client from config plus flag overrides and restores
// any persisted session.
func newApp(ctx context.Context) *jot.App {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fatal("Failed to load config", err)
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	app, err := jot.New(cfg.ServerURL,
		jot.WithDataDir(cfg.DataDir),
		jot.WithLogger(slog.Default()),
	)
	if err != nil {
		fatal("Failed to initialize jot", err)
	}
	app.Restore(ctx)
	return app
}

func requireSession(app *jot.App) {
	if _, ok := app.Session.Current(); !ok {
		fmt.Fprintln(os.Stderr, "Not logged in. Run 'jot login' first.")
		os.Exit(1)
	}
}
