package design

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidSampleRate = errors.New("design: sample rate must be positive and finite")
	ErrInvalidFrequency  = errors.New("design: center frequency must lie in (0, Nyquist)")
	ErrInvalidQ          = errors.New("design: Q must be positive and finite")
)

// ValidateBand reports whether centerHz, q and sampleRate describe a band
// the designers can realise without dividing by zero or aliasing.
func ValidateBand(centerHz, q, sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidSampleRate, sampleRate)
	}

	if _, ok := normalizedW0(centerHz, sampleRate); !ok {
		return fmt.Errorf("%w: %g Hz at %g Hz", ErrInvalidFrequency, centerHz, sampleRate)
	}

	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidQ, q)
	}

	return nil
}
