package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/notepad/pkg/core"
	"github.com/aretw0/notepad/pkg/format"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseID(args[0])
		s := mustSession(cmd)
		defer s.Close()

		n, ok := s.service.Note(id)
		if !ok {
			fatal("Error reading task", fmt.Errorf("note %d: %w", id, core.ErrNotFound))
		}
		if err := (format.TextEncoder{Location: time.Local}).Encode(cmd.OutOrStdout(), core.NoteList{n}); err != nil {
			fatal("Error writing task", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
