package transform

import (
	"context"
	"fmt"

	"github.com/featkit/featkit/core"
	"github.com/featkit/featkit/feature"
	"github.com/featkit/featkit/pipeline"
)

// OneHotStage expands a bin-index column into K ordered one-hot columns
// Output_0..Output_{K-1}. The source column is removed unless KeepSource is
// set, mirroring the bookkeeping a trainer expects from the driver.
type OneHotStage struct {
	Column     string // source column holding a bin index
	Output     string // destination vector name
	Size       int    // number of bins K
	KeepSource bool
}

func (s *OneHotStage) Name() string        { return "transform.onehot" }
func (s *OneHotStage) Kind() pipeline.Kind { return pipeline.KindTransform }

func (s *OneHotStage) Process(
	ctx context.Context,
	rctx *core.RunContext,
	records []*core.Record,
) ([]*core.Record, error) {
	if s.Size < 1 {
		return nil, core.NewDomainError(core.ModulePipeline, core.ErrorCodeInvalidConfig,
			fmt.Sprintf("one-hot stage: size must be >= 1, got %d", s.Size))
	}
	for _, rec := range records {
		v, ok := rec.Features[s.Column]
		if !ok {
			return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeNotFound,
				fmt.Sprintf("one-hot stage: record %d has no feature %q", rec.ID, s.Column))
		}
		vec, err := feature.OneHot(int(v), s.Size)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", rec.ID, err)
		}
		rec.SetFeatureVector(s.Output, vec)
		if !s.KeepSource {
			delete(rec.Features, s.Column)
		}
	}
	return records, nil
}
