package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eqctl/dsp/core"
	"github.com/cwbudde/algo-eqctl/dsp/filter/biquad"
	"github.com/cwbudde/algo-eqctl/dsp/fixed"
)

const (
	// DefaultPoints is the number of log-spaced points of a response plot.
	DefaultPoints = 512
	// DefaultLowerHz is the lower edge of a response plot.
	DefaultLowerHz = 20.0
	// DefaultFFTSize is long enough for the impulse response of a low
	// shelf at a few hundred Hz to decay below double precision.
	DefaultFFTSize = 16384
)

var (
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
	ErrInvalidFFTSize    = errors.New("response: FFT size must be a power of two >= 2")
	ErrBandMismatch      = errors.New("response: quantized and float band counts differ")
)

// LogFrequencies returns n frequencies spaced logarithmically from lo to hi
// inclusive.
func LogFrequencies(n int, lo, hi float64) []float64 {
	if n <= 0 || lo <= 0 || hi <= 0 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}

	ratio := math.Log(hi / lo)
	for i := range out {
		out[i] = lo * math.Exp(ratio*float64(i)/float64(n-1))
	}

	return out
}

// PlotFrequencies returns [DefaultPoints] log-spaced frequencies from 20 Hz
// to Nyquist.
func PlotFrequencies(sampleRate float64) []float64 {
	return LogFrequencies(DefaultPoints, DefaultLowerHz, sampleRate/2)
}

// TotalMagnitudeDB returns the cascaded magnitude of coeffs at each
// frequency in freqs.
func TotalMagnitudeDB(coeffs []biquad.Coefficients, freqs []float64, sampleRate float64) []float64 {
	return biquad.NewChain(coeffs).MagnitudesDB(nil, freqs, sampleRate)
}

// FFTMagnitudeDB measures the cascade's magnitude from an fftSize-point
// impulse response. It returns the bin frequencies 0..Nyquist and the
// magnitude in dB at each.
func FFTMagnitudeDB(coeffs []biquad.Coefficients, sampleRate float64, fftSize int) ([]float64, []float64, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, nil, fmt.Errorf("%w: %g", ErrInvalidSampleRate, sampleRate)
	}

	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}

	ir := biquad.NewChain(coeffs).ImpulseResponse(fftSize)

	in := make([]complex128, fftSize)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, nil, fmt.Errorf("response: fft plan: %w", err)
	}

	bins := make([]complex128, fftSize)
	if err := plan.Forward(bins, in); err != nil {
		return nil, nil, fmt.Errorf("response: fft: %w", err)
	}

	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for k := range half {
		re[k] = real(bins[k])
		im[k] = imag(bins[k])
	}

	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)

	freqs := make([]float64, half)
	for k := range mag {
		freqs[k] = float64(k) * sampleRate / float64(fftSize)
		mag[k] = core.LinearToDB(mag[k])
	}

	return freqs, mag, nil
}

// QuantizationErrorDB returns the largest absolute difference, in dB, between
// the response of the dequantized set and the float designs over freqs.
// Pass hardwareSign when set was quantized through the hardware adapter.
func QuantizationErrorDB(set fixed.BandSet, designs []biquad.Coefficients, hardwareSign bool, freqs []float64, sampleRate float64) (float64, error) {
	if len(set) != len(designs) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrBandMismatch, len(set), len(designs))
	}

	q := TotalMagnitudeDB(set.Float(hardwareSign), freqs, sampleRate)
	f := TotalMagnitudeDB(designs, freqs, sampleRate)

	worst := 0.0
	for i := range q {
		if d := math.Abs(q[i] - f[i]); d > worst {
			worst = d
		}
	}

	return worst, nil
}
