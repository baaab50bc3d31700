package biquad

import (
	"math"
	"testing"
)

// tolerance for floating-point comparisons.
const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestIdentity(t *testing.T) {
	id := Identity()
	if id.B0 != 1 || id.B1 != 0 || id.B2 != 0 || id.A1 != 0 || id.A2 != 0 {
		t.Fatalf("Identity() = %+v", id)
	}

	if !id.IsIdentity() {
		t.Fatal("Identity().IsIdentity() = false")
	}

	if (Coefficients{B0: 1, A1: 1e-17}).IsIdentity() {
		t.Fatal("near-identity reported as identity")
	}
}

func TestNewSection(t *testing.T) {
	c := Coefficients{B0: 1, B1: 2, B2: 3, A1: 4, A2: 5}
	s := NewSection(c)
	if s.Coefficients != c {
		t.Fatalf("coefficients mismatch: got %v, want %v", s.Coefficients, c)
	}

	if st := s.State(); st != [2]float64{0, 0} {
		t.Fatalf("initial state not zero: %v", st)
	}
}

func TestProcessSample_Identity(t *testing.T) {
	s := NewSection(Identity())
	for i, x := range []float64{1, 0, -1, 0.5, 0.25} {
		if y := s.ProcessSample(x); !almostEqual(y, x, eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestProcessSample_DFIIT(t *testing.T) {
	// Hand-traced impulse response for B0=0.25, B1=0.5, B2=0.25, A1=-0.2, A2=0.04.
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	s := NewSection(c)

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}

		if y := s.ProcessSample(x); !almostEqual(y, w, eps) {
			t.Fatalf("y[%d] = %v, want %v", i, y, w)
		}
	}
}

func TestProcessBlock_MatchesProcessSample(t *testing.T) {
	c := Coefficients{B0: 0.3, B1: -0.1, B2: 0.2, A1: -0.5, A2: 0.25}
	a := NewSection(c)
	b := NewSection(c)

	buf := []float64{1, -0.5, 0.25, 0, 0.75, -1, 0.1}
	want := make([]float64, len(buf))
	for i, x := range buf {
		want[i] = a.ProcessSample(x)
	}

	b.ProcessBlock(buf)
	for i := range buf {
		if !almostEqual(buf[i], want[i], eps) {
			t.Fatalf("index %d: block %v, sample %v", i, buf[i], want[i])
		}
	}

	if a.State() != b.State() {
		t.Fatalf("state diverged: %v vs %v", a.State(), b.State())
	}
}

func TestResetAndState(t *testing.T) {
	s := NewSection(Coefficients{B0: 0.5, B1: 0.5, A1: -0.3})
	s.ProcessSample(1)
	saved := s.State()

	s.Reset()
	if s.State() != [2]float64{} {
		t.Fatal("Reset did not clear state")
	}

	s.SetState(saved)
	if s.State() != saved {
		t.Fatal("SetState did not restore state")
	}
}
