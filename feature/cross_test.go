package feature

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/featkit/featkit/core"
)

func TestCross(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		b    []float64
		want []float64
	}{
		{
			name: "one-hot 3x2, active (1,0)",
			a:    []float64{0, 1, 0},
			b:    []float64{1, 0},
			want: []float64{0, 0, 1, 0, 0, 0},
		},
		{
			name: "one-hot 2x3, active (0,2)",
			a:    []float64{1, 0},
			b:    []float64{0, 0, 1},
			want: []float64{0, 0, 1, 0, 0, 0},
		},
		{
			name: "non-one-hot inputs are multiplied element-wise",
			a:    []float64{0.5, 0.5},
			b:    []float64{1, 0, 0},
			want: []float64{0.5, 0, 0, 0.5, 0, 0},
		},
		{
			name: "single-element vectors",
			a:    []float64{2},
			b:    []float64{3},
			want: []float64{6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cross(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Cross() error = %v", err)
			}
			if len(got) != len(tt.a)*len(tt.b) {
				t.Fatalf("Cross() length = %d, want %d", len(got), len(tt.a)*len(tt.b))
			}
			for k := range got {
				if got[k] != tt.want[k] {
					t.Errorf("Cross()[%d] = %v, want %v", k, got[k], tt.want[k])
				}
			}
		})
	}
}

func TestCross_ZeroLengthInput(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		b    []float64
	}{
		{"empty a", nil, []float64{1, 0}},
		{"empty b", []float64{1, 0}, nil},
		{"both empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cross(tt.a, tt.b)
			if err == nil {
				t.Fatalf("Cross() = %v, want error", got)
			}
			if !core.IsInvalidArgument(err) {
				t.Errorf("Cross() error = %v, want INVALID_ARGUMENT", err)
			}
			if got != nil {
				t.Errorf("Cross() returned a vector alongside an error: %v", got)
			}
		})
	}
}

// Bilinearity sanity check: sum(cross(a,b)) == sum(a) * sum(b).
func TestCross_SumIsProductOfSums(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		b    []float64
	}{
		{"one-hot pair", []float64{0, 1, 0}, []float64{1, 0}},
		{"soft categorical", []float64{0.5, 0.5}, []float64{1, 0, 0}},
		{"arbitrary weights", []float64{0.25, 0.75, 2}, []float64{3, 0.5}},
	}

	sum := func(vs []float64) float64 {
		var s float64
		for _, v := range vs {
			s += v
		}
		return s
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cross(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Cross() error = %v", err)
			}
			want := sum(tt.a) * sum(tt.b)
			if diff := sum(got) - want; diff > 1e-12 || diff < -1e-12 {
				t.Errorf("sum(Cross()) = %v, want %v", sum(got), want)
			}
		})
	}
}

// Cross(b, a) is the transpose-flattened equivalent of Cross(a, b): both
// orderings recover the same active index pair.
func TestCross_ActiveIndexRecoveryFromEitherOrdering(t *testing.T) {
	const i0, j0 = 2, 1
	a, err := OneHot(i0, 4)
	if err != nil {
		t.Fatalf("OneHot() error = %v", err)
	}
	b, err := OneHot(j0, 3)
	if err != nil {
		t.Fatalf("OneHot() error = %v", err)
	}

	ab, err := Cross(a, b)
	if err != nil {
		t.Fatalf("Cross(a, b) error = %v", err)
	}
	ba, err := Cross(b, a)
	if err != nil {
		t.Fatalf("Cross(b, a) error = %v", err)
	}

	kAB, err := ActiveIndex(ab)
	if err != nil {
		t.Fatalf("ActiveIndex(ab) error = %v", err)
	}
	kBA, err := ActiveIndex(ba)
	if err != nil {
		t.Fatalf("ActiveIndex(ba) error = %v", err)
	}

	if gotI, gotJ := SplitCrossIndex(kAB, len(b)); gotI != i0 || gotJ != j0 {
		t.Errorf("Cross(a, b) active pair = (%d, %d), want (%d, %d)", gotI, gotJ, i0, j0)
	}
	// In the b-first ordering the pair comes back swapped.
	if gotJ, gotI := SplitCrossIndex(kBA, len(a)); gotI != i0 || gotJ != j0 {
		t.Errorf("Cross(b, a) active pair = (%d, %d), want (%d, %d)", gotI, gotJ, i0, j0)
	}
}

// The housing assignment scenario: 10-bin longitude one-hot crossed with a
// 10-bin latitude one-hot yields a 100-length vector with a single 1.
func TestCross_TenByTenBinnedCoordinates(t *testing.T) {
	lonBinner, err := NewEqualWidthBinner(-124.35, -114.31, 10)
	if err != nil {
		t.Fatalf("NewEqualWidthBinner() error = %v", err)
	}
	latBinner, err := NewEqualWidthBinner(32.54, 41.95, 10)
	if err != nil {
		t.Fatalf("NewEqualWidthBinner() error = %v", err)
	}

	lonBin := lonBinner.Assign(-118.24) // Los Angeles-ish
	latBin := latBinner.Assign(34.05)

	lon, err := OneHot(lonBin, lonBinner.Bins())
	if err != nil {
		t.Fatalf("OneHot() error = %v", err)
	}
	lat, err := OneHot(latBin, latBinner.Bins())
	if err != nil {
		t.Fatalf("OneHot() error = %v", err)
	}

	crossed, err := Cross(lon, lat)
	if err != nil {
		t.Fatalf("Cross() error = %v", err)
	}
	if len(crossed) != 100 {
		t.Fatalf("Cross() length = %d, want 100", len(crossed))
	}

	ones := 0
	for k, v := range crossed {
		switch v {
		case 1:
			ones++
			if k != CrossIndex(lonBin, latBin, 10) {
				t.Errorf("active index = %d, want %d", k, CrossIndex(lonBin, latBin, 10))
			}
		case 0:
		default:
			t.Errorf("entry %d = %v, want 0 or 1", k, v)
		}
	}
	if ones != 1 {
		t.Errorf("got %d ones, want exactly 1", ones)
	}
}

func TestCrossN(t *testing.T) {
	a := []float64{0, 1, 0}
	b := []float64{1, 0}
	c := []float64{0, 0, 1, 0}

	t.Run("two inputs match Cross", func(t *testing.T) {
		want, err := Cross(a, b)
		if err != nil {
			t.Fatalf("Cross() error = %v", err)
		}
		got, err := CrossN(a, b)
		if err != nil {
			t.Fatalf("CrossN() error = %v", err)
		}
		if len(got) != len(want) {
			t.Fatalf("CrossN() length = %d, want %d", len(got), len(want))
		}
		for k := range got {
			if got[k] != want[k] {
				t.Errorf("CrossN()[%d] = %v, want %v", k, got[k], want[k])
			}
		}
	})

	t.Run("three one-hot inputs", func(t *testing.T) {
		got, err := CrossN(a, b, c)
		if err != nil {
			t.Fatalf("CrossN() error = %v", err)
		}
		if len(got) != len(a)*len(b)*len(c) {
			t.Fatalf("CrossN() length = %d, want %d", len(got), len(a)*len(b)*len(c))
		}
		active, err := ActiveIndex(got)
		if err != nil {
			t.Fatalf("ActiveIndex() error = %v", err)
		}
		// Row-major over (a, b, c): ((1*2)+0)*4 + 2.
		if want := (1*len(b)+0)*len(c) + 2; active != want {
			t.Errorf("active index = %d, want %d", active, want)
		}
	})

	t.Run("single input is copied through", func(t *testing.T) {
		got, err := CrossN(a)
		if err != nil {
			t.Fatalf("CrossN() error = %v", err)
		}
		got[0] = 99
		if a[0] == 99 {
			t.Error("CrossN() aliased its input")
		}
	})

	t.Run("no inputs", func(t *testing.T) {
		if _, err := CrossN(); !core.IsInvalidArgument(err) {
			t.Errorf("CrossN() error = %v, want INVALID_ARGUMENT", err)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if _, err := CrossN(a, nil, c); !core.IsInvalidArgument(err) {
			t.Errorf("CrossN() error = %v, want INVALID_ARGUMENT", err)
		}
	})
}

func TestCrossNames(t *testing.T) {
	names := CrossNames("lon", 3, "lat", 2)
	if len(names) != 6 {
		t.Fatalf("CrossNames() length = %d, want 6", len(names))
	}
	// Name at flattened index i*n+j describes (i, j).
	if names[CrossIndex(1, 0, 2)] != "lon_1_x_lat_0" {
		t.Errorf("names[%d] = %q, want %q", CrossIndex(1, 0, 2), names[CrossIndex(1, 0, 2)], "lon_1_x_lat_0")
	}
	if names[5] != "lon_2_x_lat_1" {
		t.Errorf("names[5] = %q, want %q", names[5], "lon_2_x_lat_1")
	}
}

func TestSplitCrossIndex_Roundtrip(t *testing.T) {
	const m, n = 7, 5
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			k := CrossIndex(i, j, n)
			gotI, gotJ := SplitCrossIndex(k, n)
			if gotI != i || gotJ != j {
				t.Fatalf("SplitCrossIndex(%d, %d) = (%d, %d), want (%d, %d)", k, n, gotI, gotJ, i, j)
			}
		}
	}
}

func TestCrossBatch_OrderPreserved(t *testing.T) {
	const records = 64
	pairs := make([][2][]float64, records)
	for k := range pairs {
		a, err := OneHot(k%5, 5)
		if err != nil {
			t.Fatalf("OneHot() error = %v", err)
		}
		b, err := OneHot(k%3, 3)
		if err != nil {
			t.Fatalf("OneHot() error = %v", err)
		}
		pairs[k] = [2][]float64{a, b}
	}

	for _, workers := range []int{1, 2, 4, 16} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			out, err := CrossBatch(context.Background(), pairs, workers)
			if err != nil {
				t.Fatalf("CrossBatch(workers=%d) error = %v", workers, err)
			}
			if len(out) != records {
				t.Fatalf("CrossBatch() length = %d, want %d", len(out), records)
			}
			for k, vec := range out {
				active, err := ActiveIndex(vec)
				if err != nil {
					t.Fatalf("record %d: ActiveIndex() error = %v", k, err)
				}
				if want := CrossIndex(k%5, k%3, 3); active != want {
					t.Errorf("workers=%d record %d: active index = %d, want %d", workers, k, active, want)
				}
			}
		})
	}
}

func TestCrossBatch_FirstErrorAborts(t *testing.T) {
	pairs := [][2][]float64{
		{{1, 0}, {0, 1}},
		{{}, {0, 1}}, // malformed record
		{{0, 1}, {1, 0}},
	}

	for _, workers := range []int{1, 4} {
		out, err := CrossBatch(context.Background(), pairs, workers)
		if err == nil {
			t.Fatalf("CrossBatch(workers=%d) = %v, want error", workers, out)
		}
		if !core.IsInvalidArgument(err) {
			t.Errorf("CrossBatch(workers=%d) error = %v, want INVALID_ARGUMENT", workers, err)
		}
		if !strings.Contains(err.Error(), "record 1") {
			t.Errorf("CrossBatch(workers=%d) error = %q, want record index in message", workers, err)
		}
		if out != nil {
			t.Errorf("CrossBatch(workers=%d) returned output alongside an error", workers)
		}
	}
}
