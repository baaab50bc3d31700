// Package design computes floating-point biquad coefficients for the three
// equalizer archetypes driven by the control knobs: low shelf, peaking and
// high shelf.
//
// All designers follow the RBJ audio-EQ cookbook with the shared
// A = 10^(gainDB/40) amplitude convention and return a0-normalized
// [biquad.Coefficients]. [Design] dispatches on a [Prototype]; [MaybeBypass]
// short-circuits negligible gains to the exact identity section.
package design
