package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseID(args[0])
		s := mustSession(cmd)
		defer s.Close()

		if err := s.notebook.Delete(commandContext(cmd), id); err != nil {
			fatal("Error deleting task", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted [%d]\n", id)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
