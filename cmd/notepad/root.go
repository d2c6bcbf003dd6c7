package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose     bool
	flagTeam    string
	flagTheme   string
	flagAdapter string
	flagData    string
	flagShare   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notepad",
	Short: "A tiny task list per team and theme, shareable as an image",
	Long: `notepad keeps a short list of tasks for each team and theme.
Tasks can be rendered to a PNG card, shared (image, caption or a pre-filled
post) or downloaded.`,
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
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&flagTeam, "team", "", "Team whose list is used (default from config, Pink)")
	flags.StringVar(&flagTheme, "theme", "", "Theme whose list is used (default from config, light)")
	flags.StringVar(&flagAdapter, "adapter", "", "Storage adapter: fs, sqlite or memory")
	flags.StringVar(&flagData, "data", "", "Data directory")
	flags.StringVar(&flagShare, "share", "", "Share target: link, clipboard or spool")
}
