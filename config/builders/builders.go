// Package builders registers the built-in stage builders with the config
// registry. Import for side effects in config-driven mains.
package builders

import (
	"fmt"

	"github.com/featkit/featkit/config"
	"github.com/featkit/featkit/dataset"
	"github.com/featkit/featkit/feature"
	"github.com/featkit/featkit/filter"
	"github.com/featkit/featkit/pipeline"
	"github.com/featkit/featkit/pkg/conv"
	"github.com/featkit/featkit/transform"
)

func init() {
	config.Register("load.csv", BuildCSVStage)
	config.Register("filter.expr", BuildExprFilterStage)
	config.Register("filter.missing", BuildMissingFilterStage)
	config.Register("transform.bin", BuildBinStage)
	config.Register("transform.onehot", BuildOneHotStage)
	config.Register("transform.cross", BuildCrossStage)
	config.Register("transform.drop", BuildDropStage)
}

func BuildCSVStage(cfg map[string]any) (pipeline.Stage, error) {
	path := conv.ConfigGet(cfg, "path", "")
	if path == "" {
		return nil, fmt.Errorf("load.csv: path is required")
	}
	return &dataset.CSVStage{
		Path: path,
		TSV:  conv.ConfigGet(cfg, "tsv", false),
	}, nil
}

func BuildExprFilterStage(cfg map[string]any) (pipeline.Stage, error) {
	expr := conv.ConfigGet(cfg, "expr", "")
	if expr == "" {
		return nil, fmt.Errorf("filter.expr: expr is required")
	}
	f, err := filter.NewExprFilter(expr)
	if err != nil {
		return nil, err
	}
	return &filter.FilterStage{Filters: []filter.Filter{f}}, nil
}

func BuildMissingFilterStage(cfg map[string]any) (pipeline.Stage, error) {
	columns := conv.SliceAnyToString(cfg["columns"])
	if len(columns) == 0 {
		return nil, fmt.Errorf("filter.missing: columns is required")
	}
	return &filter.FilterStage{Filters: []filter.Filter{
		&filter.MissingFilter{Columns: columns},
	}}, nil
}

func BuildBinStage(cfg map[string]any) (pipeline.Stage, error) {
	column := conv.ConfigGet(cfg, "column", "")
	if column == "" {
		return nil, fmt.Errorf("transform.bin: column is required")
	}
	output := conv.ConfigGet(cfg, "output", column+"_bin")

	var (
		binner feature.Binner
		err    error
	)
	if boundaries := conv.SliceAnyToFloat64(cfg["boundaries"]); len(boundaries) > 0 {
		binner, err = feature.NewBoundaryBinner(boundaries)
	} else {
		binner, err = feature.NewEqualWidthBinner(
			conv.ConfigGetFloat64(cfg, "min", 0),
			conv.ConfigGetFloat64(cfg, "max", 0),
			conv.ConfigGetInt(cfg, "bins", 0),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("transform.bin %s: %w", column, err)
	}

	return &transform.BinStage{Column: column, Output: output, Binner: binner}, nil
}

func BuildOneHotStage(cfg map[string]any) (pipeline.Stage, error) {
	column := conv.ConfigGet(cfg, "column", "")
	if column == "" {
		return nil, fmt.Errorf("transform.onehot: column is required")
	}
	size := conv.ConfigGetInt(cfg, "size", 0)
	if size < 1 {
		return nil, fmt.Errorf("transform.onehot %s: size must be >= 1", column)
	}
	return &transform.OneHotStage{
		Column:     column,
		Output:     conv.ConfigGet(cfg, "output", column+"_oh"),
		Size:       size,
		KeepSource: conv.ConfigGet(cfg, "keep_source", false),
	}, nil
}

func BuildCrossStage(cfg map[string]any) (pipeline.Stage, error) {
	left := conv.ConfigGet(cfg, "left", "")
	right := conv.ConfigGet(cfg, "right", "")
	if left == "" || right == "" {
		return nil, fmt.Errorf("transform.cross: left and right are required")
	}
	leftSize := conv.ConfigGetInt(cfg, "left_size", 0)
	rightSize := conv.ConfigGetInt(cfg, "right_size", 0)
	if leftSize < 1 || rightSize < 1 {
		return nil, fmt.Errorf("transform.cross: left_size and right_size must be >= 1")
	}
	return &transform.CrossStage{
		Left:        left,
		LeftSize:    leftSize,
		Right:       right,
		RightSize:   rightSize,
		Output:      conv.ConfigGet(cfg, "output", left+"_x_"+right),
		Workers:     conv.ConfigGetInt(cfg, "workers", 1),
		KeepSources: conv.ConfigGet(cfg, "keep_sources", false),
	}, nil
}

func BuildDropStage(cfg map[string]any) (pipeline.Stage, error) {
	features := conv.SliceAnyToString(cfg["features"])
	fields := conv.SliceAnyToString(cfg["fields"])
	if len(features) == 0 && len(fields) == 0 {
		return nil, fmt.Errorf("transform.drop: features or fields is required")
	}
	return &transform.DropStage{Features: features, Fields: fields}, nil
}
