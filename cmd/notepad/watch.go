package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/notepad/pkg/adapters/lifecycle"
	"github.com/aretw0/notepad/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch [pattern]",
	Short: "Print changes to stored slots and reload the current list",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := "*"
		if len(args) == 1 {
			pattern = args[0]
		}

		s := mustSession(cmd)
		defer s.Close()

		ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := s.service.Watch(ctx, pattern)
		if err != nil {
			fatal("Error starting watcher", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Watching %q, press Ctrl+C to stop\n", pattern)

		src := lifecycle.NewSource(events, nil)
		if err := src.Start(ctx); err != nil {
			fatal("Error starting watcher", err)
		}

		for ev := range src.Events() {
			e, ok := ev.(core.Event)
			if !ok {
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.String())
			if s.notebook.Sync(ctx, e) {
				fmt.Fprintf(cmd.OutOrStdout(), "  reloaded %d tasks\n", len(s.notebook.Notes()))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
