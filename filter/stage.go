package filter

import (
	"context"

	"github.com/featkit/featkit/core"
	"github.com/featkit/featkit/pipeline"
	"github.com/featkit/featkit/pkg/utils"
)

// FilterStage combines multiple filters into one pipeline stage. A record is
// removed as soon as any filter votes to remove it. Filter errors abort the
// run: a predicate that cannot be evaluated must not silently let rows
// through.
type FilterStage struct {
	Filters []Filter
}

func (s *FilterStage) Name() string        { return "filter.stage" }
func (s *FilterStage) Kind() pipeline.Kind { return pipeline.KindFilter }

func (s *FilterStage) Process(
	ctx context.Context,
	rctx *core.RunContext,
	records []*core.Record,
) ([]*core.Record, error) {
	if len(s.Filters) == 0 || len(records) == 0 {
		return records, nil
	}

	out := make([]*core.Record, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}

		removed := false
		for _, f := range s.Filters {
			ok, err := f.ShouldFilter(ctx, rctx, rec)
			if err != nil {
				return nil, err
			}
			if ok {
				removed = true
				rec.PutLabel("filtered", utils.Label{
					Value:  "true",
					Source: f.Name(),
				})
				break
			}
		}
		if !removed {
			out = append(out, rec)
		}
	}
	return out, nil
}
