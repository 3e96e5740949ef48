package pipeline

import (
	"context"

	"github.com/featkit/featkit/core"
)

// Kind tags a Stage by phase, for observability and config validation.
type Kind string

const (
	KindLoad      Kind = "load"      // ingest records from a dataset
	KindTransform Kind = "transform" // derive, encode or drop features
	KindFilter    Kind = "filter"    // reject records that fail a predicate
	KindOutput    Kind = "output"    // hand records to a trainer or sink
)

// Stage is the smallest composable unit of a pipeline. Every stage takes the
// current record set and returns the next one, so loading, transforming,
// filtering and dropping all share a single shape.
type Stage interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		rctx *core.RunContext,
		records []*core.Record,
	) ([]*core.Record, error)
}

// StageBuilder constructs a Stage from its decoded config map.
type StageBuilder func(config map[string]any) (Stage, error)
