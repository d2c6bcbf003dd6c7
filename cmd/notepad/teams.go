package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the configured teams",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, _, err := loadConfig()
		if err != nil {
			fatal("Error reading configuration", err)
		}
		for _, t := range cfg.Teams {
			marker := " "
			if t.Name == cfg.Team {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %-10s %s\n", marker, t.Name, t.Color)
		}
	},
}

func init() {
	rootCmd.AddCommand(teamsCmd)
}
