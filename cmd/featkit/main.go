package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "featkit",
	Short: "Feature-engineering pipelines for tabular datasets",
	Long: `featkit runs declarative feature-engineering pipelines over CSV/TSV
datasets: filtering, binning, one-hot encoding and feature crossing.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
