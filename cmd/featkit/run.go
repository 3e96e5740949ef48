package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/spf13/cobra"

	"github.com/featkit/featkit/config"
	_ "github.com/featkit/featkit/config/builders" // register built-in stages
	"github.com/featkit/featkit/core"
	"github.com/featkit/featkit/pipeline"
)

var runConfigPath string

func init() {
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "Pipeline config file (YAML)")
	_ = runCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a configured pipeline",
	Long: `Run a pipeline described by a YAML config.

Example:
  featkit run -c pipeline.yaml`,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := pipeline.LoadFromYAML(runConfigPath)
	if err != nil {
		return err
	}
	if err := config.ValidatePipelineConfig(cfg); err != nil {
		return err
	}

	p, err := cfg.BuildPipeline(config.DefaultFactory())
	if err != nil {
		return err
	}

	rctx := &core.RunContext{Dataset: cfg.Pipeline.Name}
	records, err := p.Run(cmd.Context(), rctx, nil)
	if err != nil {
		return err
	}

	log.Printf("pipeline %s: %d records", cfg.Pipeline.Name, len(records))
	if len(records) == 0 {
		return nil
	}

	columns := make([]string, 0, len(records[0].Features))
	for name := range records[0].Features {
		columns = append(columns, name)
	}
	sort.Strings(columns)
	fmt.Printf("feature columns (%d):\n", len(columns))
	for _, name := range columns {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
