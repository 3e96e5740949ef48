// Package dsl evaluates row-filter expressions written in CEL
// (Common Expression Language): type-safe, thread-safe and compiled once
// per expression.
package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
)

var (
	celEnv     *cel.Env
	celEnvOnce sync.Once
	celEnvErr  error
)

// getCELEnv builds the shared CEL environment. Three variables are in scope:
//   - fields:   raw parsed values of the record (string, float64, ...)
//   - features: numeric feature columns of the record
//   - params:   run-level parameters from the RunContext
func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("fields", cel.DynType),
			cel.Variable("features", cel.DynType),
			cel.Variable("params", cel.DynType),
		)
	})
	return celEnv, celEnvErr
}

// Evaluator is a compiled boolean CEL expression over one record.
//
// Expression examples:
//   - `features.median_house_value < 500001.0` → keep only uncapped rows
//   - `fields.ocean_proximity == "ISLAND"`
//   - `features.rooms > 0.0 && features.rooms < params.max_rooms`
//
// Missing keys evaluate to an error, not false; use `key in features` to
// test presence first.
type Evaluator struct {
	expr string
	prg  cel.Program
}

// NewEvaluator compiles expr. The returned Evaluator is safe for concurrent
// use and can be evaluated many times.
func NewEvaluator(expr string) (*Evaluator, error) {
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}
	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, iss.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program %q: %w", expr, err)
	}
	return &Evaluator{expr: expr, prg: prg}, nil
}

// Expr returns the source expression.
func (e *Evaluator) Expr() string { return e.expr }

// Evaluate runs the expression against one record's fields and features plus
// the run parameters, and returns the boolean result.
func (e *Evaluator) Evaluate(fields map[string]any, features map[string]float64, params map[string]any) (bool, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	if params == nil {
		params = map[string]any{}
	}
	// CEL's default type adapter wants map[string]any.
	feats := make(map[string]any, len(features))
	for k, v := range features {
		feats[k] = v
	}

	out, _, err := e.prg.Eval(map[string]any{
		"fields":   fields,
		"features": feats,
		"params":   params,
	})
	if err != nil {
		return false, fmt.Errorf("eval %q: %w", e.expr, err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("eval %q: result is %T, want bool", e.expr, out.Value())
	}
	return b, nil
}
