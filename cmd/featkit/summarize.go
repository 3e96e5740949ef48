package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/featkit/featkit/core"
	"github.com/featkit/featkit/dataset"
	"github.com/featkit/featkit/feature"
)

var (
	summarizeDataPath string
	summarizeColumn   string
	summarizeTSV      bool
)

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeDataPath, "data", "d", "", "Dataset file (CSV/TSV)")
	summarizeCmd.Flags().StringVarP(&summarizeColumn, "column", "f", "", "Numeric column to summarize")
	summarizeCmd.Flags().BoolVar(&summarizeTSV, "tsv", false, "Parse the dataset as tab-separated")
	_ = summarizeCmd.MarkFlagRequired("data")
	_ = summarizeCmd.MarkFlagRequired("column")
	rootCmd.AddCommand(summarizeCmd)
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Print statistics for a numeric column",
	Long: `Print count, mean, standard deviation and quantiles for one numeric
column of a dataset, handy when picking bin ranges.

Example:
  featkit summarize -d housing.csv -f median_income`,
	RunE: runSummarize,
}

func runSummarize(cmd *cobra.Command, args []string) error {
	var (
		records []*core.Record
		err     error
	)
	if summarizeTSV {
		records, err = dataset.LoadTSV(summarizeDataPath)
	} else {
		records, err = dataset.LoadCSV(summarizeDataPath)
	}
	if err != nil {
		return err
	}

	values := make([]float64, 0, len(records))
	for _, rec := range records {
		if v, ok := rec.Features[summarizeColumn]; ok {
			values = append(values, v)
		}
	}

	s, err := feature.Summarize(values)
	if err != nil {
		return fmt.Errorf("column %q: %w", summarizeColumn, err)
	}

	fmt.Printf("%s (%d values)\n", summarizeColumn, s.Count)
	fmt.Printf("  mean   %.4f\n", s.Mean)
	fmt.Printf("  std    %.4f\n", s.Std)
	fmt.Printf("  min    %.4f\n", s.Min)
	fmt.Printf("  p25    %.4f\n", s.P25)
	fmt.Printf("  median %.4f\n", s.Median)
	fmt.Printf("  p75    %.4f\n", s.P75)
	fmt.Printf("  p95    %.4f\n", s.P95)
	fmt.Printf("  p99    %.4f\n", s.P99)
	fmt.Printf("  max    %.4f\n", s.Max)
	return nil
}
