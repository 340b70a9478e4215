package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the songsearch command tree
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "songsearch",
		Short: "Search Deezer tracks from the terminal",
		Long: `songsearch - a terminal search screen for the Deezer catalogue

Type a song or artist, press Enter, and the matching tracks are listed
with their title, artist and cover. Every search replaces the list.

Example:
  songsearch
  songsearch --query "daft punk"
  songsearch --config ./songsearch.toml --log-level debug`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, configPath)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/songsearch/config.toml)")
	flags.String("endpoint", "", "Deezer search URL (overrides config)")
	flags.Duration("timeout", 0, "request timeout, 0 for none (overrides config)")
	flags.StringP("query", "q", "", "pre-fill the search box and search on start")
	flags.Bool("cancel-stale", false, "drop responses of superseded searches")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "log file path, empty string disables logging")
	flags.Bool("alt-screen", true, "use the terminal's alternate screen")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
