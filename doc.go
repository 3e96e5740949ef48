// Package featkit is a feature-engineering toolkit for tabular datasets.
//
// Design points:
//   - Pipeline-first: loading, filtering, binning, encoding and crossing are
//     composable Stages over a shared record shape (Load → Filter → Transform)
//   - Explicit vectors: one-hot and crossed features keep an ordered,
//     index-addressable layout so columns stay nameable and debuggable
//   - Labels-first: records carry provenance labels end to end, so a row can
//     explain which stage binned, crossed or filtered it
package featkit

import "github.com/featkit/featkit/pipeline"

// Lightweight facade so users can import featkit for the core abstractions.
type Pipeline = pipeline.Pipeline
type Stage = pipeline.Stage
type Kind = pipeline.Kind

const (
	KindLoad      = pipeline.KindLoad
	KindTransform = pipeline.KindTransform
	KindFilter    = pipeline.KindFilter
	KindOutput    = pipeline.KindOutput
)
