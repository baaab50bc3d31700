// Package testutil holds helpers shared by the package tests.
package testutil

// Constant returns n copies of value.
func Constant(value uint16, n int) []uint16 {
	out := make([]uint16, n)
	for i := range out {
		out[i] = value
	}

	return out
}

// Ramp returns n samples stepping linearly from lo to hi inclusive.
func Ramp(lo, hi uint16, n int) []uint16 {
	if n <= 0 {
		return nil
	}

	out := make([]uint16, n)
	if n == 1 {
		out[0] = lo
		return out
	}

	span := float64(int(hi) - int(lo))
	for i := range out {
		out[i] = uint16(int(lo) + int(span*float64(i)/float64(n-1)))
	}

	return out
}
