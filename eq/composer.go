package eq

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-eqctl/dsp/control"
	"github.com/cwbudde/algo-eqctl/dsp/filter/biquad"
	"github.com/cwbudde/algo-eqctl/dsp/filter/design"
	"github.com/cwbudde/algo-eqctl/dsp/fixed"
	"github.com/cwbudde/algo-eqctl/dsp/smooth"
)

// neutralPosition is the normalized value reported for every band after
// [Composer.Reset] and before the first update.
const neutralPosition = 0.5

// ErrSampleCount is returned by [Composer.Update] when the number of raw
// samples differs from the number of slots.
var ErrSampleCount = errors.New("eq: raw sample count does not match slot count")

// Band is the state of one slot after the most recent update.
type Band struct {
	Slot

	Smoothed   uint16
	Normalized float64
	GainDB     float64
	Bypassed   bool

	// Coefficients is the textbook-sign design; Quantized is what goes on
	// the wire, with the hardware sign adapter applied if enabled.
	Coefficients biquad.Coefficients
	Quantized    fixed.Biquad
}

// Composer runs the coefficient pipeline for a fixed set of band slots.
type Composer struct {
	cfg       Config
	mapper    control.Mapper
	smoothers []*smooth.MovingAverage
	bands     []Band
}

// New validates the configuration built from opts and returns a reset
// composer.
func New(opts ...Option) (*Composer, error) {
	cfg, err := ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}

	return newComposer(cfg)
}

// NewFromConfig is like [New] for a fully populated Config.
func NewFromConfig(cfg Config) (*Composer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Slots = append([]Slot(nil), cfg.Slots...)

	return newComposer(cfg)
}

func newComposer(cfg Config) (*Composer, error) {
	c := &Composer{
		cfg:       cfg,
		mapper:    cfg.Mapper(),
		smoothers: make([]*smooth.MovingAverage, len(cfg.Slots)),
		bands:     make([]Band, len(cfg.Slots)),
	}

	for i := range c.smoothers {
		m, err := smooth.New(cfg.Window)
		if err != nil {
			return nil, fmt.Errorf("eq: slot %d: %w", i, err)
		}

		c.smoothers[i] = m
	}

	c.Reset()

	return c, nil
}

// Reset clears every smoothing history and returns all bands to the
// neutral position with identity coefficients.
func (c *Composer) Reset() {
	for i, m := range c.smoothers {
		m.Reset()
		c.bands[i] = Band{
			Slot:         c.cfg.Slots[i],
			Normalized:   neutralPosition,
			GainDB:       c.mapper.GainDB(neutralPosition),
			Coefficients: biquad.Identity(),
			Quantized:    fixed.Identity(),
		}
	}
}

// Update runs one cycle over raw, one sample per slot in slot order, and
// returns a freshly allocated BandSet.
func (c *Composer) Update(raw []uint16) (fixed.BandSet, error) {
	set := make(fixed.BandSet, len(c.bands))
	if err := c.UpdateInto(set, raw); err != nil {
		return nil, err
	}

	return set, nil
}

// UpdateInto is the allocation-free form of [Composer.Update]; dst must have
// one element per slot.
func (c *Composer) UpdateInto(dst fixed.BandSet, raw []uint16) error {
	if len(raw) != len(c.bands) {
		return fmt.Errorf("%w: got %d, want %d", ErrSampleCount, len(raw), len(c.bands))
	}

	if len(dst) != len(c.bands) {
		return fmt.Errorf("%w: destination holds %d bands, want %d", ErrSampleCount, len(dst), len(c.bands))
	}

	for i, sample := range raw {
		c.updateBand(i, sample)
		dst[i] = c.bands[i].Quantized
	}

	return nil
}

func (c *Composer) updateBand(i int, sample uint16) {
	b := &c.bands[i]

	b.Smoothed = c.smoothers[i].Update(sample)
	b.Normalized = c.mapper.Normalize(b.Smoothed)
	b.GainDB = c.mapper.GainDB(b.Normalized)
	b.Coefficients, b.Bypassed = design.DesignOrBypass(
		b.Prototype, b.GainDB, b.CenterHz, b.Q, c.cfg.SampleRate, c.cfg.BypassThresholdDB)

	out := b.Coefficients
	if c.cfg.HardwareSignConvention {
		out = fixed.HardwareSignConvention(out)
	}

	b.Quantized = fixed.Quantize(out)
}

// NormalizedValues returns the current smoothed, mapped knob positions in
// slot order.
func (c *Composer) NormalizedValues() []float64 {
	out := make([]float64, len(c.bands))
	for i := range c.bands {
		out[i] = c.bands[i].Normalized
	}

	return out
}

// Bands returns a copy of the per-slot state.
func (c *Composer) Bands() []Band {
	return append([]Band(nil), c.bands...)
}

// Coefficients returns the textbook-sign float designs of the last update,
// suitable for biquad.NewChain.
func (c *Composer) Coefficients() []biquad.Coefficients {
	out := make([]biquad.Coefficients, len(c.bands))
	for i := range c.bands {
		out[i] = c.bands[i].Coefficients
	}

	return out
}

// NumBands returns the number of configured slots.
func (c *Composer) NumBands() int {
	return len(c.bands)
}

// Config returns a copy of the configuration.
func (c *Composer) Config() Config {
	cfg := c.cfg
	cfg.Slots = append([]Slot(nil), c.cfg.Slots...)

	return cfg
}
