package pipeline

import (
	"context"
	"fmt"

	"github.com/featkit/featkit/core"
)

// Pipeline chains feature-engineering logic as a sequence of Stages.
type Pipeline struct {
	Stages []Stage
}

func (p *Pipeline) Run(
	ctx context.Context,
	rctx *core.RunContext,
	records []*core.Record,
) ([]*core.Record, error) {
	cur := records
	for _, stage := range p.Stages {
		next, err := stage.Process(ctx, rctx, cur)
		if err != nil {
			return nil, fmt.Errorf("stage %s: %w", stage.Name(), err)
		}
		cur = next
	}
	return cur, nil
}
