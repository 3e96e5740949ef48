package filter

import (
	"context"
	"fmt"

	"github.com/featkit/featkit/core"
	"github.com/featkit/featkit/pkg/dsl"
)

// ExprFilter removes records for which a CEL expression evaluates to true.
// The expression sees `fields`, `features` and `params`; see the dsl package
// for syntax and examples.
type ExprFilter struct {
	eval *dsl.Evaluator
}

// NewExprFilter compiles the expression once; evaluation happens per record.
func NewExprFilter(expr string) (*ExprFilter, error) {
	eval, err := dsl.NewEvaluator(expr)
	if err != nil {
		return nil, fmt.Errorf("expr filter: %w", err)
	}
	return &ExprFilter{eval: eval}, nil
}

func (f *ExprFilter) Name() string {
	return "filter.expr(" + f.eval.Expr() + ")"
}

func (f *ExprFilter) ShouldFilter(ctx context.Context, rctx *core.RunContext, rec *core.Record) (bool, error) {
	var params map[string]any
	if rctx != nil {
		params = rctx.Params
	}
	return f.eval.Evaluate(rec.Fields, rec.Features, params)
}
