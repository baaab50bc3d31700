// Package eq turns per-band raw knob samples into a quantized coefficient
// set, one polling cycle at a time.
//
// A [Composer] owns the smoothing state of every band slot. Each call to
// [Composer.Update] runs every slot through
//
//	moving average → normalize (unity snap) → dB cut → bypass or RBJ design →
//	optional hardware sign adapter → Q2.14
//
// and returns the results in slot order. [Pipeline] adds the external
// collaborators around it: a sample [Source] and a wire.ByteSender.
//
// Neither type is safe for concurrent use; drive one instance from a single
// goroutine.
package eq
