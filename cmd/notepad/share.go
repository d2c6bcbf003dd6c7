package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var shareTrace bool

var shareCmd = &cobra.Command{
	Use:   "share <id>",
	Short: "Share a task as an image, falling back to text or a compose link",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseID(args[0])
		s := mustSession(cmd)
		defer s.Close()

		out := s.notebook.Share(commandContext(cmd), id)
		if shareTrace {
			for _, step := range out.Steps {
				if step.Err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s: %v\n", step.Stage, step.Err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", step.Stage)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Shared [%d] via %s\n", id, out.Delivered)
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
	shareCmd.Flags().BoolVar(&shareTrace, "trace", false, "Print every stage of the share pipeline")
}
