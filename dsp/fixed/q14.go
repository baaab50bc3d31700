package fixed

import "math"

const (
	// FracBits is the number of fractional bits in a Q2.14 word.
	FracBits = 14
	// Scale is 2^FracBits; 1.0 encodes as Scale.
	Scale = 1 << FracBits

	// One is 1.0 in Q2.14 (0x4000).
	One int16 = Scale

	minQ14 = math.MinInt16
	maxQ14 = math.MaxInt16
)

// ToQ14 rounds x*2^14 half away from zero and saturates the result to
// [-32768, 32767]. NaN maps to 0.
func ToQ14(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}

	v := math.Round(x * Scale)
	if v > maxQ14 {
		return maxQ14
	}

	if v < minQ14 {
		return minQ14
	}

	return int16(v)
}

// FromQ14 converts a Q2.14 word back to float64.
func FromQ14(q int16) float64 {
	return float64(q) / Scale
}

// Saturates reports whether [ToQ14] clamps x. Quantization itself never
// reports clipping; callers that care check the inputs with this.
func Saturates(x float64) bool {
	v := math.Round(x * Scale)
	return v > maxQ14 || v < minQ14
}

// MaxValue and MinValue are the representable extremes as float64.
var (
	MaxValue = FromQ14(maxQ14)
	MinValue = FromQ14(minQ14)
)
