// Package dataset loads delimited datasets into records and provides the
// title lookup repository.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/featkit/featkit/core"
	"github.com/featkit/featkit/pipeline"
	"github.com/featkit/featkit/pkg/utils"
)

// LoadCSV reads a comma-separated file with a header row into records.
// Every cell lands in Fields under its column name; cells that parse as
// numbers are mirrored into Features so transform stages can read them
// without re-parsing.
func LoadCSV(path string) ([]*core.Record, error) {
	return loadDelimited(path, ',')
}

// LoadTSV reads a tab-separated file with a header row into records.
func LoadTSV(path string) ([]*core.Record, error) {
	return loadDelimited(path, '\t')
}

func loadDelimited(path string, comma rune) ([]*core.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = comma
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeInvalidArgument,
			fmt.Sprintf("dataset %s is empty", path))
	}

	header := rows[0]
	records := make([]*core.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec := core.NewRecord(int64(i + 1))
		for j, name := range header {
			if j >= len(row) {
				break
			}
			cell := row[j]
			rec.Fields[name] = cell
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				rec.Features[name] = v
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// CSVStage loads a dataset file as a pipeline stage. Any records flowing in
// are replaced by the file contents.
type CSVStage struct {
	Path string
	TSV  bool
}

func (s *CSVStage) Name() string        { return "load.csv" }
func (s *CSVStage) Kind() pipeline.Kind { return pipeline.KindLoad }

func (s *CSVStage) Process(
	ctx context.Context,
	rctx *core.RunContext,
	_ []*core.Record,
) ([]*core.Record, error) {
	var (
		records []*core.Record
		err     error
	)
	if s.TSV {
		records, err = LoadTSV(s.Path)
	} else {
		records, err = LoadCSV(s.Path)
	}
	if err != nil {
		return nil, err
	}
	if rctx != nil {
		rctx.PutLabel("dataset", utils.Label{Value: s.Path, Source: "load"})
	}
	return records, nil
}
