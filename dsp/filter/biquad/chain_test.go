package biquad

import "testing"

func TestNewChain(t *testing.T) {
	c := NewChain([]Coefficients{Identity(), {B0: 0.5}})
	if c.NumSections() != 2 {
		t.Fatalf("NumSections: got %d, want 2", c.NumSections())
	}

	if y := c.ProcessSample(1); y != 0.5 {
		t.Fatalf("ProcessSample = %v, want 0.5", y)
	}
}

func TestChain_UpdateCoefficientsKeepsState(t *testing.T) {
	c := NewChain([]Coefficients{{B0: 1, B1: 1, A1: -0.5}})
	c.ProcessSample(1)
	st := c.State()

	c.UpdateCoefficients([]Coefficients{{B0: 0.5, B1: 1, A1: -0.5}})
	if c.State()[0] != st[0] {
		t.Fatal("state reset on same-size update")
	}

	if c.Section(0).B0 != 0.5 {
		t.Fatalf("B0 = %v, want 0.5", c.Section(0).B0)
	}

	c.UpdateCoefficients([]Coefficients{Identity(), Identity(), Identity()})
	if c.NumSections() != 3 {
		t.Fatalf("NumSections = %d, want 3", c.NumSections())
	}
}

func TestChain_ProcessBlockMatchesSample(t *testing.T) {
	coeffs := []Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
		{B0: 0.1, B1: 0.2, B2: 0.1, A1: -0.5, A2: 0.1},
	}
	a := NewChain(coeffs)
	b := NewChain(coeffs)

	buf := []float64{1, 0, 0, 0.5, -0.5, 0}
	want := make([]float64, len(buf))
	for i, x := range buf {
		want[i] = a.ProcessSample(x)
	}

	b.ProcessBlock(buf)
	for i := range buf {
		if !almostEqual(buf[i], want[i], eps) {
			t.Fatalf("index %d: %v != %v", i, buf[i], want[i])
		}
	}
}
