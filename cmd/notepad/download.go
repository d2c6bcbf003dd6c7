package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var downloadCmd = &cobra.Command{
	Use:   "download <id>",
	Short: "Save a task card as <title>.png",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseID(args[0])
		s := mustSession(cmd)
		defer s.Close()

		name, err := s.notebook.Download(commandContext(cmd), id)
		if err != nil {
			fatal("Error downloading task", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", name)
	},
}

func init() {
	rootCmd.AddCommand(downloadCmd)
}
