package main

import (
	"encoding/json"
	"strconv"

	"github.com/ClipFinance/gasfee-lib/congestion"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var congestionCmd = &cobra.Command{
	Use:   "congestion [score]",
	Short: "Classify a network congestion score",
	Long:  "Print the status label, color and indicator position for a congestion score between 0 and 1",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var score *float64
		if len(args) == 1 {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.Wrapf(err, "invalid score %q", args[0])
			}
			score = &value
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(congestion.Classify(score))
	},
}

func init() {
	rootCmd.AddCommand(congestionCmd)
}
