package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the service and its storage",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := mustSession(cmd)
		defer s.Close()

		states := map[string]any{}
		for _, c := range []any{s.service, s.backend} {
			intro, ok := c.(introspection.Introspectable)
			if !ok {
				continue
			}
			name := fmt.Sprintf("%T", c)
			if comp, ok := c.(introspection.Component); ok {
				name = comp.ComponentType()
			}
			states[name] = intro.State()
		}

		if statusJSON {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(states); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}
		for name, state := range states {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %+v\n", name, state)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
}
