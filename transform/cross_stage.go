package transform

import (
	"context"
	"fmt"

	"github.com/featkit/featkit/core"
	"github.com/featkit/featkit/feature"
	"github.com/featkit/featkit/pipeline"
	"github.com/featkit/featkit/pkg/utils"
)

// CrossStage crosses two encoded column groups into LeftSize*RightSize
// columns named Output_0..Output_{M*N-1}, flattened row-major over the left
// vector then the right (feature.Cross's contract). The now-redundant source
// columns are dropped unless KeepSources is set.
type CrossStage struct {
	Left      string // left vector name (columns Left_0..Left_{LeftSize-1})
	LeftSize  int
	Right     string // right vector name
	RightSize int
	Output    string // crossed vector name
	Workers   int    // concurrent workers for the batch; <= 1 runs inline

	KeepSources bool
}

func (s *CrossStage) Name() string        { return "transform.cross" }
func (s *CrossStage) Kind() pipeline.Kind { return pipeline.KindTransform }

func (s *CrossStage) Process(
	ctx context.Context,
	rctx *core.RunContext,
	records []*core.Record,
) ([]*core.Record, error) {
	if s.LeftSize < 1 || s.RightSize < 1 {
		return nil, core.NewDomainError(core.ModulePipeline, core.ErrorCodeInvalidConfig,
			fmt.Sprintf("cross stage: vector sizes must be >= 1, got %d and %d", s.LeftSize, s.RightSize))
	}

	pairs := make([][2][]float64, len(records))
	for k, rec := range records {
		left, err := rec.FeatureVector(s.Left, s.LeftSize)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", rec.ID, err)
		}
		right, err := rec.FeatureVector(s.Right, s.RightSize)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", rec.ID, err)
		}
		pairs[k] = [2][]float64{left, right}
	}

	crossed, err := feature.CrossBatch(ctx, pairs, s.Workers)
	if err != nil {
		return nil, err
	}

	for k, rec := range records {
		rec.SetFeatureVector(s.Output, crossed[k])
		if !s.KeepSources {
			rec.DropFeatureVector(s.Left, s.LeftSize)
			rec.DropFeatureVector(s.Right, s.RightSize)
		}
		rec.PutLabel("crossed", utils.Label{
			Value:  s.Left + "_x_" + s.Right,
			Source: "transform",
		})
	}
	return records, nil
}
