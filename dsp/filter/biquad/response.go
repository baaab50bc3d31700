package biquad

import (
	"math"
	"math/cmplx"
)

// unitDelay returns z^-1 on the unit circle at freqHz.
func unitDelay(freqHz, sampleRate float64) complex128 {
	return cmplx.Rect(1, -2*math.Pi*freqHz/sampleRate)
}

// eval returns H(z) for the given z^-1.
func (c *Coefficients) eval(zInv complex128) complex128 {
	zInv2 := zInv * zInv

	num := complex(c.B0, 0) + complex(c.B1, 0)*zInv + complex(c.B2, 0)*zInv2
	den := 1 + complex(c.A1, 0)*zInv + complex(c.A2, 0)*zInv2

	return num / den
}

// Response returns the complex frequency response at freqHz.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	return c.eval(unitDelay(freqHz, sampleRate))
}

// MagnitudeDB returns 20*log10|H(f)|.
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return toDB(c.Response(freqHz, sampleRate))
}

// Phase returns the phase response in radians.
func (c *Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// Response returns the product of the section responses at freqHz.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	zInv := unitDelay(freqHz, sampleRate)

	h := complex(1, 0)
	for i := range c.sections {
		h *= c.sections[i].eval(zInv)
	}

	return h
}

// MagnitudeDB returns the cascaded magnitude in dB at freqHz.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return toDB(c.Response(freqHz, sampleRate))
}

// MagnitudesDB evaluates the cascade at every frequency in freqs and writes
// the result into dst, which is grown as needed and returned.
func (c *Chain) MagnitudesDB(dst, freqs []float64, sampleRate float64) []float64 {
	if cap(dst) < len(freqs) {
		dst = make([]float64, len(freqs))
	}
	dst = dst[:len(freqs)]

	for i, f := range freqs {
		dst[i] = c.MagnitudeDB(f, sampleRate)
	}

	return dst
}

func toDB(h complex128) float64 {
	return 20 * math.Log10(cmplx.Abs(h))
}

type stateful interface {
	ProcessSample(x float64) float64
	Reset()
}

// impulse feeds a unit impulse through f from a cleared state.
func impulse(f stateful, n int) []float64 {
	if n <= 0 {
		return nil
	}

	f.Reset()

	ir := make([]float64, n)
	for i := range ir {
		x := 0.0
		if i == 0 {
			x = 1
		}
		ir[i] = f.ProcessSample(x)
	}

	return ir
}

// ImpulseResponse returns the first n output samples for a unit impulse.
// The section's state is left as it was.
func (s *Section) ImpulseResponse(n int) []float64 {
	saved := s.State()
	defer s.SetState(saved)

	return impulse(s, n)
}

// ImpulseResponse returns the first n samples of the cascade's impulse
// response. The chain's state is left as it was.
func (c *Chain) ImpulseResponse(n int) []float64 {
	saved := c.State()
	defer c.SetState(saved)

	return impulse(c, n)
}
