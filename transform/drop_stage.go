package transform

import (
	"context"

	"github.com/featkit/featkit/core"
	"github.com/featkit/featkit/pipeline"
)

// DropStage removes feature columns and raw fields that later stages and the
// trainer must not see (pre-cross raw and intermediate encoded columns).
type DropStage struct {
	Features []string // feature column names to remove
	Fields   []string // raw field names to remove
}

func (s *DropStage) Name() string        { return "transform.drop" }
func (s *DropStage) Kind() pipeline.Kind { return pipeline.KindTransform }

func (s *DropStage) Process(
	ctx context.Context,
	rctx *core.RunContext,
	records []*core.Record,
) ([]*core.Record, error) {
	for _, rec := range records {
		for _, name := range s.Features {
			delete(rec.Features, name)
		}
		for _, name := range s.Fields {
			delete(rec.Fields, name)
		}
	}
	return records, nil
}
