package main

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

var slotsCmd = &cobra.Command{
	Use:   "slots [pattern]",
	Short: "List stored slots, optionally filtered by a glob pattern",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := "*"
		if len(args) == 1 {
			pattern = args[0]
		}
		if !doublestar.ValidatePattern(pattern) {
			fatal("Invalid pattern", fmt.Errorf("%q", pattern))
		}

		s := mustSession(cmd)
		defer s.Close()

		keys, err := s.service.Slots(commandContext(cmd))
		if err != nil {
			fatal("Error listing slots", err)
		}
		current := s.service.Slot().String()
		for _, k := range keys {
			if ok, _ := doublestar.Match(pattern, k); !ok {
				continue
			}
			marker := " "
			if k == current {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, k)
		}
	},
}

func init() {
	rootCmd.AddCommand(slotsCmd)
}
