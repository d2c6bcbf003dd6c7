package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notepad/pkg/notebook"
)

var (
	addTitle   string
	addContent string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a task to the current list",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := mustSession(cmd)
		defer s.Close()

		s.notebook.Editor().SetTitle(addTitle)
		s.notebook.Editor().SetContent(addContent)
		submit(cmd, s.notebook)
	},
}

// submit saves the form and reports the result.
func submit(cmd *cobra.Command, nb *notebook.Notebook) {
	heading := nb.Heading()
	n, ok, err := nb.Submit(commandContext(cmd))
	if !ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: title and content are required, nothing saved\n", heading)
		return
	}
	if err != nil {
		fatal("Error saving task", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: saved [%d] %s\n", heading, n.ID, n.Title)
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Task title")
	addCmd.Flags().StringVarP(&addContent, "content", "c", "", "Task content")
}
