package eq

import (
	"fmt"

	"github.com/cwbudde/algo-eqctl/dsp/fixed"
	"github.com/cwbudde/algo-eqctl/wire"
)

// Source yields one raw sample per acquired channel each polling cycle.
// Read fills dst completely or returns an error.
type Source interface {
	Read(dst []uint16) error
}

// SourceFunc adapts a function to [Source].
type SourceFunc func(dst []uint16) error

// Read calls f(dst).
func (f SourceFunc) Read(dst []uint16) error { return f(dst) }

// StaticSource returns the same samples every cycle. Channels beyond its
// length read as zero.
type StaticSource []uint16

// Read copies s into dst.
func (s StaticSource) Read(dst []uint16) error {
	n := copy(dst, s)
	clear(dst[n:])

	return nil
}

type pipelineConfig struct {
	channels     int
	slotChannels []int
}

// PipelineOption configures a [Pipeline].
type PipelineOption func(*pipelineConfig) error

// WithChannels sets how many raw channels are read per cycle. All of them
// are transmitted in the frame, whether or not a slot uses them. Defaults to
// the number of slots.
func WithChannels(n int) PipelineOption {
	return func(cfg *pipelineConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: %d channels", ErrInvalidConfig, n)
		}

		cfg.channels = n

		return nil
	}
}

// WithSlotChannels routes slot i from raw channel idx[i]. Defaults to the
// identity mapping.
func WithSlotChannels(idx ...int) PipelineOption {
	return func(cfg *pipelineConfig) error {
		cfg.slotChannels = append([]int(nil), idx...)
		return nil
	}
}

// Pipeline performs complete polling cycles: acquire, compose, encode,
// transmit.
type Pipeline struct {
	composer     *Composer
	source       Source
	channel      wire.ByteSender
	slotChannels []int

	raw     []uint16
	slotRaw []uint16
	set     fixed.BandSet
	frame   []byte
}

// NewPipeline wires a composer to its collaborators.
func NewPipeline(c *Composer, src Source, ch wire.ByteSender, opts ...PipelineOption) (*Pipeline, error) {
	if c == nil || src == nil || ch == nil {
		return nil, fmt.Errorf("%w: pipeline needs a composer, a source and a channel", ErrInvalidConfig)
	}

	n := c.NumBands()
	cfg := pipelineConfig{channels: n}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.slotChannels == nil {
		cfg.slotChannels = make([]int, n)
		for i := range cfg.slotChannels {
			cfg.slotChannels[i] = i
		}
	}

	if len(cfg.slotChannels) != n {
		return nil, fmt.Errorf("%w: %d slot channels for %d slots", ErrInvalidConfig, len(cfg.slotChannels), n)
	}

	for i, idx := range cfg.slotChannels {
		if idx < 0 || idx >= cfg.channels {
			return nil, fmt.Errorf("%w: slot %d reads channel %d of %d", ErrInvalidConfig, i, idx, cfg.channels)
		}
	}

	return &Pipeline{
		composer:     c,
		source:       src,
		channel:      ch,
		slotChannels: cfg.slotChannels,
		raw:          make([]uint16, cfg.channels),
		slotRaw:      make([]uint16, n),
		set:          make(fixed.BandSet, n),
		frame:        make([]byte, 0, wire.FrameLen(cfg.channels, n)),
	}, nil
}

// Step runs one cycle to completion. The returned BandSet and the buffer
// behind [Pipeline.LastFrame] are reused by the next call.
func (p *Pipeline) Step() (fixed.BandSet, error) {
	if err := p.source.Read(p.raw); err != nil {
		return nil, fmt.Errorf("eq: read samples: %w", err)
	}

	for i, ch := range p.slotChannels {
		p.slotRaw[i] = p.raw[ch]
	}

	if err := p.composer.UpdateInto(p.set, p.slotRaw); err != nil {
		return nil, err
	}

	p.frame = wire.AppendFrame(p.frame[:0], p.raw, p.set)

	if err := wire.Send(p.channel, p.frame); err != nil {
		return nil, fmt.Errorf("eq: transmit frame: %w", err)
	}

	return p.set, nil
}

// LastFrame returns the bytes sent by the most recent successful Step.
func (p *Pipeline) LastFrame() []byte {
	return p.frame
}

// Composer returns the composer driven by p.
func (p *Pipeline) Composer() *Composer {
	return p.composer
}
