// Package transform provides the built-in feature-engineering stages:
// binning, one-hot encoding, feature crossing and column dropping.
package transform

import (
	"context"
	"fmt"

	"github.com/featkit/featkit/core"
	"github.com/featkit/featkit/feature"
	"github.com/featkit/featkit/pipeline"
	"github.com/featkit/featkit/pkg/utils"
)

// BinStage maps a continuous feature column to a bin-index column.
// A record missing the source column aborts the run: silently skipping it
// would leave a hole downstream encoders cannot detect.
type BinStage struct {
	Column string         // source feature column (continuous)
	Output string         // destination column holding the bin index
	Binner feature.Binner // bin assigner
}

func (s *BinStage) Name() string        { return "transform.bin" }
func (s *BinStage) Kind() pipeline.Kind { return pipeline.KindTransform }

func (s *BinStage) Process(
	ctx context.Context,
	rctx *core.RunContext,
	records []*core.Record,
) ([]*core.Record, error) {
	if s.Binner == nil {
		return nil, core.NewDomainError(core.ModulePipeline, core.ErrorCodeInvalidConfig,
			"bin stage: binner is required")
	}
	for _, rec := range records {
		v, ok := rec.Features[s.Column]
		if !ok {
			return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeNotFound,
				fmt.Sprintf("bin stage: record %d has no feature %q", rec.ID, s.Column))
		}
		rec.Features[s.Output] = float64(s.Binner.Assign(v))
		rec.PutLabel("binned", utils.Label{Value: s.Column, Source: "transform"})
	}
	return records, nil
}
