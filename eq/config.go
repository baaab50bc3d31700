package eq

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-eqctl/dsp/control"
	"github.com/cwbudde/algo-eqctl/dsp/filter/design"
	"github.com/cwbudde/algo-eqctl/dsp/smooth"
)

const (
	// DefaultSampleRate is used only for the frequency warping of the designs.
	DefaultSampleRate = 48000.0
	// DefaultQ is the resonance shared by the reference bands.
	DefaultQ = 0.707
	// MaxSlots is the largest number of bands a composer accepts.
	MaxSlots = 6
)

// ErrInvalidConfig wraps every construction-time validation failure.
var ErrInvalidConfig = errors.New("eq: invalid configuration")

// Slot binds one band position to a prototype, a centre frequency and a Q.
type Slot struct {
	Prototype design.Prototype
	CenterHz  float64
	Q         float64
}

// String formats the slot as "peaking@1000Hz/Q0.707".
func (s Slot) String() string {
	return fmt.Sprintf("%v@%gHz/Q%g", s.Prototype, s.CenterHz, s.Q)
}

// ThreeBandSlots returns the baseline low shelf / mid peak / high shelf layout.
func ThreeBandSlots() []Slot {
	return []Slot{
		{Prototype: design.LowShelf, CenterHz: 400, Q: DefaultQ},
		{Prototype: design.Peaking, CenterHz: 1000, Q: DefaultQ},
		{Prototype: design.HighShelf, CenterHz: 2000, Q: DefaultQ},
	}
}

// SixBandSlots extends [ThreeBandSlots] with three more bands. The baseline
// slots keep their positions so a three-band consumer can read the prefix.
func SixBandSlots() []Slot {
	return append(ThreeBandSlots(),
		Slot{Prototype: design.Peaking, CenterHz: 250, Q: DefaultQ},
		Slot{Prototype: design.Peaking, CenterHz: 4000, Q: DefaultQ},
		Slot{Prototype: design.HighShelf, CenterHz: 8000, Q: DefaultQ},
	)
}

// Config is the complete, construction-time configuration of a [Composer].
type Config struct {
	SampleRate        float64
	Slots             []Slot
	Window            int
	ADCMax            uint16
	SnapFraction      float64
	MaxCutDB          float64
	BypassThresholdDB float64

	// HardwareSignConvention negates a1 and a2 before quantization for
	// engines that accumulate the feedback terms instead of subtracting them.
	HardwareSignConvention bool
}

// DefaultConfig returns the reference three-band configuration.
func DefaultConfig() Config {
	return Config{
		SampleRate:        DefaultSampleRate,
		Slots:             ThreeBandSlots(),
		Window:            smooth.DefaultWindow,
		ADCMax:            control.DefaultADCMax,
		SnapFraction:      control.DefaultSnapFraction,
		MaxCutDB:          control.DefaultMaxCutDB,
		BypassThresholdDB: design.DefaultBypassThresholdDB,
	}
}

// Mapper returns the knob calibration part of the configuration.
func (c Config) Mapper() control.Mapper {
	return control.Mapper{
		ADCMax:       c.ADCMax,
		SnapFraction: c.SnapFraction,
		MaxCutDB:     c.MaxCutDB,
	}
}

// Validate checks every field. Errors wrap [ErrInvalidConfig] and the
// underlying package error.
func (c Config) Validate() error {
	if len(c.Slots) == 0 || len(c.Slots) > MaxSlots {
		return fmt.Errorf("%w: %d slots, want 1..%d", ErrInvalidConfig, len(c.Slots), MaxSlots)
	}

	if c.Window <= 0 || c.Window > smooth.MaxWindow {
		return fmt.Errorf("%w: %w: %d", ErrInvalidConfig, smooth.ErrInvalidWindow, c.Window)
	}

	if err := c.Mapper().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.BypassThresholdDB < 0 || math.IsNaN(c.BypassThresholdDB) || math.IsInf(c.BypassThresholdDB, 0) {
		return fmt.Errorf("%w: bypass threshold %g dB", ErrInvalidConfig, c.BypassThresholdDB)
	}

	for i, s := range c.Slots {
		if !s.Prototype.Valid() {
			return fmt.Errorf("%w: slot %d: unknown prototype %v", ErrInvalidConfig, i, s.Prototype)
		}

		if err := design.ValidateBand(s.CenterHz, s.Q, c.SampleRate); err != nil {
			return fmt.Errorf("%w: slot %d: %w", ErrInvalidConfig, i, err)
		}
	}

	return nil
}

// Option mutates a Config.
type Option func(*Config) error

// WithSampleRate sets the sample rate used by the designers.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) error {
		cfg.SampleRate = sampleRate
		return nil
	}
}

// WithSlots replaces the band layout. The slice is copied.
func WithSlots(slots ...Slot) Option {
	return func(cfg *Config) error {
		if len(slots) == 0 || len(slots) > MaxSlots {
			return fmt.Errorf("%w: %d slots, want 1..%d", ErrInvalidConfig, len(slots), MaxSlots)
		}

		cfg.Slots = append([]Slot(nil), slots...)

		return nil
	}
}

// WithWindow sets the moving-average length.
func WithWindow(window int) Option {
	return func(cfg *Config) error {
		cfg.Window = window
		return nil
	}
}

// WithADCMax sets the full-scale raw code.
func WithADCMax(adcMax uint16) Option {
	return func(cfg *Config) error {
		cfg.ADCMax = adcMax
		return nil
	}
}

// WithSnapFraction sets the fraction of full scale at which a knob snaps to
// unity.
func WithSnapFraction(fraction float64) Option {
	return func(cfg *Config) error {
		cfg.SnapFraction = fraction
		return nil
	}
}

// WithMaxCutDB sets the cut applied with the knob at zero.
func WithMaxCutDB(db float64) Option {
	return func(cfg *Config) error {
		cfg.MaxCutDB = db
		return nil
	}
}

// WithBypassThresholdDB sets the gain magnitude below which a band is sent
// as the identity section.
func WithBypassThresholdDB(db float64) Option {
	return func(cfg *Config) error {
		cfg.BypassThresholdDB = db
		return nil
	}
}

// WithHardwareSignConvention enables the accumulate-only sign adapter.
func WithHardwareSignConvention(enabled bool) Option {
	return func(cfg *Config) error {
		cfg.HardwareSignConvention = enabled
		return nil
	}
}

// ApplyOptions applies opts to [DefaultConfig] and validates the result.
func ApplyOptions(opts ...Option) (Config, error) {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
