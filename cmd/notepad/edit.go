package main

import (
	"github.com/spf13/cobra"
)

var (
	editTitle   string
	editContent string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change the title or content of a task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseID(args[0])
		s := mustSession(cmd)
		defer s.Close()

		if err := s.notebook.Edit(id); err != nil {
			fatal("Error editing task", err)
		}
		if cmd.Flags().Changed("title") {
			s.notebook.Editor().SetTitle(editTitle)
		}
		if cmd.Flags().Changed("content") {
			s.notebook.Editor().SetContent(editContent)
		}
		submit(cmd, s.notebook)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content")
}
