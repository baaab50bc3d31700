package eq

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-eqctl/dsp/control"
	"github.com/cwbudde/algo-eqctl/dsp/filter/design"
	"github.com/cwbudde/algo-eqctl/dsp/smooth"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	if len(cfg.Slots) != 3 || cfg.Window != 5 || cfg.ADCMax != 4095 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	if cfg.SnapFraction != 3850.0/4095.0 || cfg.MaxCutDB != 15 || cfg.BypassThresholdDB != 0.1 {
		t.Fatalf("unexpected calibration: %+v", cfg)
	}

	if cfg.HardwareSignConvention {
		t.Fatal("hardware sign convention must be opt-in")
	}
}

func TestSixBandSlotsKeepBaselinePrefix(t *testing.T) {
	six := SixBandSlots()
	three := ThreeBandSlots()

	if len(six) != MaxSlots {
		t.Fatalf("len = %d", len(six))
	}

	for i := range three {
		if six[i] != three[i] {
			t.Fatalf("slot %d = %v, want %v", i, six[i], three[i])
		}
	}
}

func TestApplyOptions_Validation(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		cause error
	}{
		{"zero q", []Option{WithSlots(Slot{design.Peaking, 1000, 0})}, design.ErrInvalidQ},
		{"above nyquist", []Option{WithSlots(Slot{design.HighShelf, 30000, 0.7})}, design.ErrInvalidFrequency},
		{"low sample rate", []Option{WithSampleRate(3000)}, design.ErrInvalidFrequency},
		{"window", []Option{WithWindow(0)}, smooth.ErrInvalidWindow},
		{"adc", []Option{WithADCMax(0)}, control.ErrInvalidADCMax},
		{"snap", []Option{WithSnapFraction(0)}, control.ErrInvalidSnapFraction},
		{"cut", []Option{WithMaxCutDB(-3)}, control.ErrInvalidMaxCut},
		{"bypass", []Option{WithBypassThresholdDB(-1)}, ErrInvalidConfig},
		{"too many slots", []Option{WithSlots(append(SixBandSlots(), ThreeBandSlots()[0])...)}, ErrInvalidConfig},
		{"no slots", []Option{WithSlots()}, ErrInvalidConfig},
		{"prototype", []Option{WithSlots(Slot{design.Prototype(7), 1000, 0.7})}, ErrInvalidConfig},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.opts...)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("got %v, want ErrInvalidConfig", err)
			}

			if !errors.Is(err, tc.cause) {
				t.Fatalf("got %v, want cause %v", err, tc.cause)
			}
		})
	}
}

func TestWithSlotsCopies(t *testing.T) {
	slots := ThreeBandSlots()
	c, err := New(WithSlots(slots...))
	if err != nil {
		t.Fatal(err)
	}

	slots[0].CenterHz = 99
	if c.Config().Slots[0].CenterHz != 400 {
		t.Fatal("composer shares caller's slot slice")
	}
}

func TestSlotString(t *testing.T) {
	if s := (Slot{design.Peaking, 1000, 0.707}).String(); s != "peaking@1000Hz/Q0.707" {
		t.Fatalf("String = %q", s)
	}
}
