package main

import (
	"fmt"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"career-engine/internal/scenario"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in scenario presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			if jsonOut {
				out := make(map[string]scenario.Preset)
				for _, name := range scenario.Names() {
					out[name], _ = scenario.Get(name)
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 1, 1, 2, ' ', 0)
			for _, name := range scenario.Names() {
				p, _ := scenario.Get(name)
				fmt.Fprintf(w, "%s\t%s\n", name, p.Description)
			}
			return w.Flush()
		},
	}
}
