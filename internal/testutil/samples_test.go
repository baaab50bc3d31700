package testutil

import "testing"

func TestConstant(t *testing.T) {
	got := Constant(4095, 3)
	if len(got) != 3 || got[0] != 4095 || got[2] != 4095 {
		t.Fatalf("Constant = %v", got)
	}
}

func TestRamp(t *testing.T) {
	got := Ramp(0, 4095, 4)
	want := []uint16{0, 1365, 2730, 4095}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Ramp = %v, want %v", got, want)
		}
	}

	if down := Ramp(10, 0, 3); down[0] != 10 || down[2] != 0 {
		t.Fatalf("descending ramp = %v", down)
	}

	if Ramp(0, 1, 0) != nil || len(Ramp(5, 9, 1)) != 1 {
		t.Fatal("degenerate lengths")
	}
}
