package design

import (
	"math"

	"github.com/cwbudde/algo-eqctl/dsp/filter/biquad"
)

const (
	defaultQ = 1 / math.Sqrt2

	// cancelEpsilon bounds the numerator/denominator mismatch below which a
	// section is treated as a pole-zero cancellation.
	cancelEpsilon = 1e-12
)

// Design returns the coefficients of prototype p at centerHz with the given
// gain and quality factor. Unknown prototypes yield the identity section.
func Design(p Prototype, gainDB, centerHz, q, sampleRate float64) biquad.Coefficients {
	switch p {
	case LowShelf:
		return LowShelfRBJ(centerHz, gainDB, q, sampleRate)
	case Peaking:
		return Peak(centerHz, gainDB, q, sampleRate)
	case HighShelf:
		return HighShelfRBJ(centerHz, gainDB, q, sampleRate)
	default:
		return biquad.Identity()
	}
}

// Peak designs a peaking-EQ biquad with gain in dB.
//
// A appears in the numerator and 1/A in the denominator, so a cut is the
// exact inverse of a boost of the same size.
func Peak(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)
	a := amplitude(gainDB)

	b0 := 1 + alpha*a
	b1 := -2 * cw
	b2 := 1 - alpha*a
	a0 := 1 + alpha/a
	a1 := -2 * cw
	a2 := 1 - alpha/a

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// LowShelfRBJ designs a low-shelf biquad with gain in dB. Frequencies below
// freq are scaled by the gain; the response returns to 0 dB above it.
func LowShelfRBJ(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)
	a := amplitude(gainDB)
	beta := 2 * math.Sqrt(a) * alpha

	b0 := a * ((a + 1) - (a-1)*cw + beta)
	b1 := 2 * a * ((a - 1) - (a+1)*cw)
	b2 := a * ((a + 1) - (a-1)*cw - beta)
	a0 := (a + 1) + (a-1)*cw + beta
	a1 := -2 * ((a - 1) + (a+1)*cw)
	a2 := (a + 1) + (a-1)*cw - beta

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// HighShelfRBJ designs a high-shelf biquad with gain in dB; the mirror of
// [LowShelfRBJ] for frequencies above freq.
func HighShelfRBJ(freq, gainDB, q, sampleRate float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return biquad.Coefficients{}
	}

	q = normalizedQ(q)
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)
	a := amplitude(gainDB)
	beta := 2 * math.Sqrt(a) * alpha

	b0 := a * ((a + 1) + (a-1)*cw + beta)
	b1 := -2 * a * ((a - 1) + (a+1)*cw)
	b2 := a * ((a + 1) + (a-1)*cw - beta)
	a0 := (a + 1) - (a-1)*cw + beta
	a1 := 2 * ((a - 1) - (a+1)*cw)
	a2 := (a + 1) - (a-1)*cw - beta

	return normalizeBiquad(b0, b1, b2, a0, a1, a2)
}

// amplitude is the cookbook shelf/peak amplitude, 10^(dB/40).
func amplitude(gainDB float64) float64 {
	return math.Pow(10, gainDB/40)
}

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

func normalizedQ(q float64) float64 {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return defaultQ
	}

	return q
}

// normalizeBiquad divides through by a0. When the numerator equals the
// denominator (A == 1) the common factor cancels and the canonical identity
// is returned instead of b1 == a1, b2 == a2 pairs.
func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return biquad.Coefficients{}
	}

	c := biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}

	if math.Abs(c.B0-1) <= cancelEpsilon &&
		math.Abs(c.B1-c.A1) <= cancelEpsilon &&
		math.Abs(c.B2-c.A2) <= cancelEpsilon {
		return biquad.Identity()
	}

	return c
}
