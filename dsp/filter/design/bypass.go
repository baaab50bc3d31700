package design

import (
	"math"

	"github.com/cwbudde/algo-eqctl/dsp/filter/biquad"
)

// DefaultBypassThresholdDB is the gain magnitude below which a band is sent
// as the identity section.
const DefaultBypassThresholdDB = 0.1

// MaybeBypass returns the exact identity section and true when |gainDB| is
// below thresholdDB. Otherwise it returns false and the caller designs the
// section normally.
func MaybeBypass(gainDB, thresholdDB float64) (biquad.Coefficients, bool) {
	if math.Abs(gainDB) < thresholdDB {
		return biquad.Identity(), true
	}

	return biquad.Coefficients{}, false
}

// DesignOrBypass applies [MaybeBypass] and falls back to [Design].
func DesignOrBypass(p Prototype, gainDB, centerHz, q, sampleRate, thresholdDB float64) (biquad.Coefficients, bool) {
	if c, ok := MaybeBypass(gainDB, thresholdDB); ok {
		return c, true
	}

	return Design(p, gainDB, centerHz, q, sampleRate), false
}
