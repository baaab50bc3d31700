// Package biquad provides the floating-point second-order section used by
// the coefficient pipeline.
//
// [Coefficients] is the transient, a0-normalized form produced by
// dsp/filter/design before quantization. [Section] and [Chain] run those
// coefficients on float64 samples so that designs and their quantized
// counterparts can be checked against each other on the host before the
// fixed-point versions are shipped to the filtering engine.
package biquad
