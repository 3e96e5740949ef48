package filter

import (
	"context"

	"github.com/featkit/featkit/core"
)

// MissingFilter removes records that lack any of the required feature
// columns, the usual first cleaning step before binning and encoding.
type MissingFilter struct {
	Columns []string
}

func (f *MissingFilter) Name() string { return "filter.missing" }

func (f *MissingFilter) ShouldFilter(ctx context.Context, rctx *core.RunContext, rec *core.Record) (bool, error) {
	for _, col := range f.Columns {
		if _, ok := rec.Features[col]; !ok {
			return true, nil
		}
	}
	return false, nil
}
