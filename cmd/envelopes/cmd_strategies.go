package main

import (
	"encoding/json"
	"fmt"

	"github.com/nvandessel/envelopes/internal/envelope"
	"github.com/nvandessel/envelopes/internal/simulation"
	"github.com/spf13/cobra"
)

var strategyDescriptions = map[envelope.Strategy]string{
	envelope.Reactive: "switch envelopes whenever the peeked slip is ordinary",
	envelope.Stubborn: "always keep the originally chosen envelope",
}

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the available playstyles",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			out := cmd.OutOrStdout()

			if jsonOut {
				list := make([]map[string]any, 0, len(envelope.Strategies()))
				for _, s := range envelope.Strategies() {
					list = append(list, map[string]any{
						"name":                 s.String(),
						"description":          strategyDescriptions[s],
						"expected_win_percent": simulation.ExpectedWinPercent(s),
					})
				}
				return json.NewEncoder(out).Encode(map[string]any{"strategies": list})
			}

			for _, s := range envelope.Strategies() {
				fmt.Fprintf(out, "%-9s %s (expected %.0f%%)\n", s, strategyDescriptions[s], simulation.ExpectedWinPercent(s))
			}
			return nil
		},
	}
}
