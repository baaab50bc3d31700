// Package response evaluates the magnitude response of a composed equalizer.
//
// [TotalMagnitudeDB] multiplies the analytic responses of the band sections,
// [FFTMagnitudeDB] measures the same curve from an FFT of the cascade's
// impulse response, and [QuantizationErrorDB] reports how far the Q2.14
// coefficients sent to the engine drift from the float design.
package response
