package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gasfee",
	Short: "Gas fee mutation utilities",
	Long:  "Compute fee updates for pending transactions and classify network congestion",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
