package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-eqctl/dsp/filter/biquad"
	"github.com/cwbudde/algo-eqctl/internal/cli"
)

const (
	wavBitDepth  = 16
	wavPCMFormat = 1
	wavFullScale = 1<<(wavBitDepth-1) - 1
)

var errInvalidLength = errors.New("impulse length must be positive")

// WavCmd renders the impulse response the engine would produce from the
// transmitted Q2.14 coefficients.
type WavCmd struct {
	KnobArgs

	Out    string `short:"o" required:"" type:"path" help:"Output WAV file."`
	Length int    `default:"4096" help:"Impulse response length in samples."`
}

// Run executes the wav command.
func (c *WavCmd) Run(g *Globals) error {
	if c.Length <= 0 {
		return fmt.Errorf("%w: %d", errInvalidLength, c.Length)
	}

	p, err := c.run(g, ChannelMap{}, nil)
	if err != nil {
		return err
	}

	cfg := p.Composer().Config()
	set := quantized(p.Composer())
	ir := biquad.NewChain(set.Float(cfg.HardwareSignConvention)).ImpulseResponse(c.Length)

	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("create %s: %w", c.Out, err)
	}

	if err := writeImpulseWAV(f, ir, int(math.Round(cfg.SampleRate))); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", c.Out, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", c.Out, err)
	}

	cli.PrintKeyValue(g.writer(), "Wrote", fmt.Sprintf("%s (%d samples @ %g Hz)", c.Out, len(ir), cfg.SampleRate))

	return nil
}

// writeImpulseWAV encodes ir as mono 16-bit PCM. Samples outside [-1, 1]
// are clipped.
func writeImpulseWAV(w io.WriteSeeker, ir []float64, sampleRate int) error {
	enc := wav.NewEncoder(w, sampleRate, wavBitDepth, 1, wavPCMFormat)

	data := make([]int, len(ir))
	for i, v := range ir {
		s := math.Round(v * wavFullScale)
		data[i] = int(max(-wavFullScale-1, min(s, wavFullScale)))
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: wavBitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return err
	}

	return enc.Close()
}
