package feature

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/featkit/featkit/core"
)

// Cross computes the flattened outer product of two categorical vectors.
//
// The result has length len(a)*len(b); entry k = i*len(b)+j equals a[i]*b[j].
// The ordering is row-major over a then b and is part of the contract:
// downstream column naming (see CrossNames) and index recovery (see
// SplitCrossIndex) depend on it.
//
// Cross is a pure bilinear map. It does not assume its inputs are one-hot,
// but if both are strictly one-hot the result is strictly one-hot at
// CrossIndex(i0, j0, len(b)). Inputs are never mutated and a fresh result is
// allocated per call, so Cross is safe for concurrent use.
//
// A zero-length input is rejected with INVALID_ARGUMENT rather than producing
// an empty vector: an empty feature vector would corrupt downstream training
// without detection.
func Cross(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidArgument,
			fmt.Sprintf("cross: both inputs must be non-empty, got lengths %d and %d", len(a), len(b)))
	}
	out := make([]float64, len(a)*len(b))
	for i, av := range a {
		row := i * len(b)
		for j, bv := range b {
			out[row+j] = av * bv
		}
	}
	return out, nil
}

// CrossN generalizes Cross to any number of inputs. The result has length
// equal to the product of all input lengths and is flattened row-major in
// argument order, so CrossN(a, b) equals Cross(a, b). At least one input is
// required and every input must be non-empty.
func CrossN(vs ...[]float64) ([]float64, error) {
	if len(vs) == 0 {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidArgument,
			"crossN: at least one input vector is required")
	}
	for i, v := range vs {
		if len(v) == 0 {
			return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidArgument,
				fmt.Sprintf("crossN: input %d has length 0", i))
		}
	}
	out := make([]float64, len(vs[0]))
	copy(out, vs[0])
	for _, v := range vs[1:] {
		next, err := Cross(out, v)
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}

// CrossIndex returns the flattened index of (i, j) in Cross(a, b) where
// n = len(b).
func CrossIndex(i, j, n int) int {
	return i*n + j
}

// SplitCrossIndex inverts CrossIndex: given a flattened index k and
// n = len(b), it recovers (i, j).
func SplitCrossIndex(k, n int) (i, j int) {
	return k / n, k % n
}

// CrossNames returns the column names for Cross output, aligned with its
// flattening order: aPrefix_i_x_bPrefix_j at flattened index i*n+j.
func CrossNames(aPrefix string, m int, bPrefix string, n int) []string {
	names := make([]string, 0, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			names = append(names, fmt.Sprintf("%s_%d_x_%s_%d", aPrefix, i, bPrefix, j))
		}
	}
	return names
}

// CrossBatch applies Cross independently to each (A_k, B_k) pair. Output
// position k always corresponds to input pair k regardless of worker count:
// results are written index-aligned into a pre-sized slice, never appended
// as they complete.
//
// workers <= 1 runs inline; otherwise pairs are fanned out across at most
// workers goroutines. The first per-record failure aborts the batch and is
// returned wrapped with the record index.
func CrossBatch(ctx context.Context, pairs [][2][]float64, workers int) ([][]float64, error) {
	out := make([][]float64, len(pairs))

	if workers <= 1 {
		for k, p := range pairs {
			crossed, err := Cross(p[0], p[1])
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", k, err)
			}
			out[k] = crossed
		}
		return out, nil
	}

	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for k, p := range pairs {
		k, p := k, p
		eg.Go(func() error {
			crossed, err := Cross(p[0], p[1])
			if err != nil {
				return fmt.Errorf("record %d: %w", k, err)
			}
			out[k] = crossed
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
