// Package control maps smoothed potentiometer readings to normalized knob
// positions and from there to a cut in dB.
//
// The mapping snaps to 1.0 for readings at or above a fraction of full
// scale, so a knob turned fully clockwise reads exactly unity even when the
// ADC never quite reaches its maximum code. Readings between the snap point
// and full scale all collapse to 1.0.
package control
