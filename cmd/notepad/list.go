package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/notepad/pkg/format"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tasks of the current team and theme",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		enc, err := format.Lookup(listFormat, time.Local)
		if err != nil {
			fatal("Error selecting format", err)
		}

		s := mustSession(cmd)
		defer s.Close()

		if listFormat == "text" {
			team := s.notebook.Team()
			fmt.Fprintf(cmd.OutOrStdout(), "%s / %s\n\n", team.Name, s.notebook.Theme())
		}
		if err := enc.Encode(cmd.OutOrStdout(), s.notebook.Notes()); err != nil {
			fatal("Error writing list", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "text", "Output format: "+strings.Join(format.Names(), ", "))
}
