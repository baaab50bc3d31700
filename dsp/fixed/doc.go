// Package fixed converts floating-point biquad coefficients into the signed
// Q2.14 words consumed by the downstream filter engine.
//
// Q2.14 stores a value in an int16 with 14 fractional bits, covering
// [-2.0, 1.99994]. [ToQ14] rounds half away from zero and saturates instead
// of wrapping. [HardwareSignConvention] is the opt-in adapter for engines
// that implement the recurrence with additions only.
package fixed
