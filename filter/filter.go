// Package filter rejects records that fail a predicate before they reach
// the encoding stages: rows with missing values, capped labels, outliers.
package filter

import (
	"context"

	"github.com/featkit/featkit/core"
)

// Filter decides whether a record should be removed from the batch.
// Returning true means filter (remove), false means keep.
type Filter interface {
	// Name returns the filter name, recorded as the filter reason.
	Name() string

	// ShouldFilter reports whether the record should be removed.
	ShouldFilter(ctx context.Context, rctx *core.RunContext, rec *core.Record) (bool, error)
}
