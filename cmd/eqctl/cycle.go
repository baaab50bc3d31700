package main

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-eqctl/dsp/fixed"
	"github.com/cwbudde/algo-eqctl/eq"
	"github.com/cwbudde/algo-eqctl/wire"
)

var errTooManySamples = errors.New("more samples than channels")

// KnobArgs are the positional samples and cycle count shared by the
// one-shot commands.
type KnobArgs struct {
	Cycles  int      `default:"0" help:"Polling cycles to run; 0 runs one full moving-average window."`
	Samples []uint16 `arg:"" optional:"" help:"Raw ADC samples, one per channel. Missing channels read as full scale."`
}

// ChannelMap describes how many channels are acquired and which one feeds
// each slot. The zero value reads one channel per slot.
type ChannelMap struct {
	Channels     int   `help:"Raw channels acquired per cycle; all of them are sent in the frame. 0 means one per band."`
	SlotChannels []int `name:"slot-channels" sep:"," help:"Channel index read by each band slot, comma separated."`
}

func (m ChannelMap) options() []eq.PipelineOption {
	var opts []eq.PipelineOption
	if m.Channels > 0 {
		opts = append(opts, eq.WithChannels(m.Channels))
	}

	if len(m.SlotChannels) > 0 {
		opts = append(opts, eq.WithSlotChannels(m.SlotChannels...))
	}

	return opts
}

// run drives a pipeline over the static samples and returns it after the
// last cycle. each, if non-nil, sees the transmitted bytes of every cycle.
func (k *KnobArgs) run(g *Globals, m ChannelMap, each func(cycle int, frame []byte)) (*eq.Pipeline, error) {
	c, err := g.Composer()
	if err != nil {
		return nil, err
	}

	channels := m.Channels
	if channels <= 0 {
		channels = c.NumBands()
	}

	if len(k.Samples) > channels {
		return nil, fmt.Errorf("%w: %d samples for %d channels", errTooManySamples, len(k.Samples), channels)
	}

	raw := make(eq.StaticSource, channels)
	for i := range raw {
		raw[i] = g.ADCMax
	}
	copy(raw, k.Samples)

	rec := &wire.Recorder{}

	p, err := eq.NewPipeline(c, raw, rec, m.options()...)
	if err != nil {
		return nil, err
	}

	cycles := k.Cycles
	if cycles <= 0 {
		cycles = g.Window
	}

	for i := range cycles {
		rec.Reset()

		if _, err := p.Step(); err != nil {
			return nil, fmt.Errorf("cycle %d: %w", i, err)
		}

		if each != nil {
			each(i, rec.Bytes)
		}
	}

	return p, nil
}

// quantized collects the Q2.14 words of the composer's last cycle.
func quantized(c *eq.Composer) fixed.BandSet {
	bands := c.Bands()

	set := make(fixed.BandSet, len(bands))
	for i, b := range bands {
		set[i] = b.Quantized
	}

	return set
}
