package control

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-eqctl/dsp/core"
)

const (
	// DefaultADCMax is full scale for a 12-bit converter.
	DefaultADCMax uint16 = 4095
	// DefaultSnapFraction places the unity snap at code 3850 of 4095.
	DefaultSnapFraction = 3850.0 / 4095.0
	// DefaultMaxCutDB is the cut applied with the knob fully counter-clockwise.
	DefaultMaxCutDB = 15.0
)

var (
	ErrInvalidADCMax       = errors.New("control: ADC max must be positive")
	ErrInvalidSnapFraction = errors.New("control: snap fraction must be in (0, 1]")
	ErrInvalidMaxCut       = errors.New("control: max cut must be >= 0 and finite")
)

// Normalize clamps sample to maxValue and maps it onto [0, 1]. Samples at or
// above thresholdFraction*maxValue return exactly 1; below that the ramp is
// linear from 0 to 1 at the threshold point.
func Normalize(sample, maxValue uint16, thresholdFraction float64) float64 {
	if sample > maxValue {
		sample = maxValue
	}

	point := thresholdFraction * float64(maxValue)
	if float64(sample) >= point || point <= 0 {
		return 1
	}

	return core.Clamp(float64(sample)/point, 0, 1)
}

// GainDB maps a normalized position to a cut: -maxCutDB at 0, 0 dB at 1.
func GainDB(normalized, maxCutDB float64) float64 {
	return -maxCutDB * (1 - normalized)
}

// Mapper bundles the calibration constants of one knob.
type Mapper struct {
	ADCMax       uint16
	SnapFraction float64
	MaxCutDB     float64
}

// DefaultMapper returns the calibration of the reference hardware.
func DefaultMapper() Mapper {
	return Mapper{
		ADCMax:       DefaultADCMax,
		SnapFraction: DefaultSnapFraction,
		MaxCutDB:     DefaultMaxCutDB,
	}
}

// Validate checks the calibration constants.
func (m Mapper) Validate() error {
	if m.ADCMax == 0 {
		return ErrInvalidADCMax
	}

	if !(m.SnapFraction > 0 && m.SnapFraction <= 1) {
		return fmt.Errorf("%w: %g", ErrInvalidSnapFraction, m.SnapFraction)
	}

	if m.MaxCutDB < 0 || math.IsNaN(m.MaxCutDB) || math.IsInf(m.MaxCutDB, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidMaxCut, m.MaxCutDB)
	}

	return nil
}

// Normalize applies [Normalize] with m's calibration.
func (m Mapper) Normalize(sample uint16) float64 {
	return Normalize(sample, m.ADCMax, m.SnapFraction)
}

// GainDB applies [GainDB] with m's maximum cut.
func (m Mapper) GainDB(normalized float64) float64 {
	return GainDB(normalized, m.MaxCutDB)
}

// SnapPoint returns the lowest raw code that snaps to unity.
func (m Mapper) SnapPoint() uint16 {
	return uint16(math.Ceil(m.SnapFraction * float64(m.ADCMax)))
}
