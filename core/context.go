package core

import "github.com/featkit/featkit/pkg/utils"

// RunContext carries dataset/run-scoped information through the whole
// pipeline. Stages read Params for tunables that are not part of their own
// config (e.g. a cap value for filtering) and may attach run-level labels.
type RunContext struct {
	Dataset string // dataset identifier or source path, for logs and labels

	// Params holds request-level parameters: column names, thresholds,
	// values referenced by filter expressions, etc.
	Params map[string]any

	// Labels are run-level labels, merged cumulatively like record labels.
	Labels map[string]utils.Label
}

// PutLabel writes a run-level label.
func (rctx *RunContext) PutLabel(key string, lbl utils.Label) {
	if rctx.Labels == nil {
		rctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := rctx.Labels[key]; ok {
		rctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	rctx.Labels[key] = lbl
}

// GetLabel returns a run-level label.
func (rctx *RunContext) GetLabel(key string) (utils.Label, bool) {
	if rctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := rctx.Labels[key]
	return lbl, ok
}

// Param returns a raw parameter value.
func (rctx *RunContext) Param(key string) (any, bool) {
	if rctx.Params == nil {
		return nil, false
	}
	v, ok := rctx.Params[key]
	return v, ok
}
