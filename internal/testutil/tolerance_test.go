package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-eqctl/dsp/filter/biquad"
)

func TestMaxAbsDiff(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"single coefficient", []float64{1, -1.5, 0.5}, []float64{1, -1.25, 0.5}, 0.25},
		{"sign flip", []float64{0.75}, []float64{-0.75}, 1.5},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MaxAbsDiff(tt.a, tt.b)
			if err != nil {
				t.Fatalf("MaxAbsDiff error: %v", err)
			}

			if got != tt.want {
				t.Fatalf("MaxAbsDiff = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireHelpersAcceptMatchingData(t *testing.T) {
	id := biquad.Identity()
	near := id
	near.B0 += 1.0 / (1 << 15)

	RequireBiquadNearlyEqual(t, near, id, 1.0/(1<<14))
	RequireSliceNearlyEqual(t, []float64{0.5, -0.25}, []float64{0.5, -0.25}, 0)
	RequireFinite(t, []float64{0, -15, math.MaxFloat64})
}
