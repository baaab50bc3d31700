package fixed

import (
	"fmt"

	"github.com/cwbudde/algo-eqctl/dsp/filter/biquad"
)

// Biquad is one second-order section in Q2.14, field order b0, b1, b2, a1, a2
// as it appears on the wire.
type Biquad struct {
	B0, B1, B2 int16
	A1, A2     int16
}

// BandSet holds one quantized section per configured band, in slot order.
type BandSet []Biquad

// Identity is the exact unity section: B0 = 0x4000, everything else 0.
func Identity() Biquad {
	return Biquad{B0: One}
}

// Quantize converts each coefficient of c independently with [ToQ14].
// The sign convention of c is preserved.
func Quantize(c biquad.Coefficients) Biquad {
	return Biquad{
		B0: ToQ14(c.B0),
		B1: ToQ14(c.B1),
		B2: ToQ14(c.B2),
		A1: ToQ14(c.A1),
		A2: ToQ14(c.A2),
	}
}

// HardwareSignConvention negates the feedback terms for engines that run
//
//	y[n] = b0·x[n] + b1·x[n-1] + b2·x[n-2] + a1'·y[n-1] + a2'·y[n-2]
//
// with a1' = -a1, a2' = -a2. Apply it before [Quantize], and only for such
// targets; the result is no longer a textbook biquad.
func HardwareSignConvention(c biquad.Coefficients) biquad.Coefficients {
	c.A1 = -c.A1
	c.A2 = -c.A2

	return c
}

// Words returns the coefficients in wire order.
func (b Biquad) Words() [5]int16 {
	return [5]int16{b.B0, b.B1, b.B2, b.A1, b.A2}
}

// Float dequantizes b. If b was produced through [HardwareSignConvention],
// pass hardwareSign so the textbook form is restored.
func (b Biquad) Float(hardwareSign bool) biquad.Coefficients {
	c := biquad.Coefficients{
		B0: FromQ14(b.B0),
		B1: FromQ14(b.B1),
		B2: FromQ14(b.B2),
		A1: FromQ14(b.A1),
		A2: FromQ14(b.A2),
	}

	if hardwareSign {
		c = HardwareSignConvention(c)
	}

	return c
}

// IsIdentity reports whether b is exactly [Identity].
func (b Biquad) IsIdentity() bool {
	return b == Identity()
}

// String formats the section as signed hex words, e.g. "4000 0000 0000 0000 0000".
func (b Biquad) String() string {
	w := b.Words()
	return fmt.Sprintf("%04X %04X %04X %04X %04X",
		uint16(w[0]), uint16(w[1]), uint16(w[2]), uint16(w[3]), uint16(w[4]))
}

// Float dequantizes every section of s.
func (s BandSet) Float(hardwareSign bool) []biquad.Coefficients {
	out := make([]biquad.Coefficients, len(s))
	for i := range s {
		out[i] = s[i].Float(hardwareSign)
	}

	return out
}
