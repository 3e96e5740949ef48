package feature

import (
	"testing"

	"github.com/featkit/featkit/core"
)

func TestEqualWidthBinner_Assign(t *testing.T) {
	binner, err := NewEqualWidthBinner(0, 10, 5)
	if err != nil {
		t.Fatalf("NewEqualWidthBinner() error = %v", err)
	}

	tests := []struct {
		name  string
		value float64
		want  int
	}{
		{"below range clamps to first bin", -3, 0},
		{"at min", 0, 0},
		{"interior first bin", 1.9, 0},
		{"interior middle bin", 5.5, 2},
		{"interior last bin", 9.9, 4},
		{"at max clamps to last bin", 10, 4},
		{"above range clamps to last bin", 42, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := binner.Assign(tt.value); got != tt.want {
				t.Errorf("Assign(%v) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}

	if binner.Bins() != 5 {
		t.Errorf("Bins() = %d, want 5", binner.Bins())
	}
}

func TestNewEqualWidthBinner_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		min     float64
		max     float64
		numBins int
	}{
		{"zero bins", 0, 10, 0},
		{"negative bins", 0, 10, -1},
		{"max equals min", 5, 5, 3},
		{"max below min", 10, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEqualWidthBinner(tt.min, tt.max, tt.numBins); !core.IsInvalidArgument(err) {
				t.Errorf("NewEqualWidthBinner() error = %v, want INVALID_ARGUMENT", err)
			}
		})
	}
}

func TestBoundaryBinner_Assign(t *testing.T) {
	binner, err := NewBoundaryBinner([]float64{0, 10, 100})
	if err != nil {
		t.Fatalf("NewBoundaryBinner() error = %v", err)
	}

	tests := []struct {
		name  string
		value float64
		want  int
	}{
		{"below first boundary", -5, 0},
		{"at first boundary", 0, 0},
		{"between first and second", 7, 0},
		{"at second boundary", 10, 1},
		{"between second and third", 55, 1},
		{"at last boundary", 100, 2},
		{"above last boundary", 1000, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := binner.Assign(tt.value); got != tt.want {
				t.Errorf("Assign(%v) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}

	if binner.Bins() != 3 {
		t.Errorf("Bins() = %d, want 3", binner.Bins())
	}
}

func TestNewBoundaryBinner_Invalid(t *testing.T) {
	if _, err := NewBoundaryBinner(nil); !core.IsInvalidArgument(err) {
		t.Errorf("NewBoundaryBinner(nil) error = %v, want INVALID_ARGUMENT", err)
	}
	if _, err := NewBoundaryBinner([]float64{10, 0}); !core.IsInvalidArgument(err) {
		t.Errorf("NewBoundaryBinner(unsorted) error = %v, want INVALID_ARGUMENT", err)
	}
}

func TestNewBoundaryBinner_CopiesBoundaries(t *testing.T) {
	boundaries := []float64{0, 10}
	binner, err := NewBoundaryBinner(boundaries)
	if err != nil {
		t.Fatalf("NewBoundaryBinner() error = %v", err)
	}
	boundaries[1] = -1
	if got := binner.Assign(10); got != 1 {
		t.Errorf("Assign(10) = %d after caller mutation, want 1", got)
	}
}
