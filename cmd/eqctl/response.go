package main

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eqctl/internal/cli"
	"github.com/cwbudde/algo-eqctl/measure/response"
)

// ResponseCmd prints the combined magnitude response of the composed bands.
type ResponseCmd struct {
	KnobArgs

	Points  int  `default:"24" help:"Number of log-spaced frequencies from 20 Hz to Nyquist."`
	FFT     bool `help:"Cross-check the analytic curve against an FFT of the impulse response."`
	FFTSize int  `name:"fft-size" default:"16384" help:"FFT length for --fft; a power of two."`
}

// Run executes the response command.
func (c *ResponseCmd) Run(g *Globals) error {
	p, err := c.run(g, ChannelMap{}, nil)
	if err != nil {
		return err
	}

	w := g.writer()
	comp := p.Composer()
	cfg := comp.Config()
	designs := comp.Coefficients()

	freqs := response.LogFrequencies(c.Points, response.DefaultLowerHz, cfg.SampleRate/2)
	mags := response.TotalMagnitudeDB(designs, freqs, cfg.SampleRate)

	for i, f := range freqs {
		fmt.Fprintf(w, "%10.1f Hz  %8.3f dB\n", f, mags[i])
	}

	quantErr, err := response.QuantizationErrorDB(quantized(comp), designs, cfg.HardwareSignConvention,
		response.PlotFrequencies(cfg.SampleRate), cfg.SampleRate)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	cli.PrintKeyValue(w, "Q2.14 max deviation", fmt.Sprintf("%.4f dB", quantErr))

	if !c.FFT {
		return nil
	}

	binFreqs, binMags, err := response.FFTMagnitudeDB(designs, cfg.SampleRate, c.FFTSize)
	if err != nil {
		return err
	}

	analytic := response.TotalMagnitudeDB(designs, binFreqs, cfg.SampleRate)

	worst := 0.0
	for k := range binMags {
		worst = math.Max(worst, math.Abs(binMags[k]-analytic[k]))
	}

	cli.PrintKeyValue(w, "FFT max deviation", fmt.Sprintf("%.2e dB over %d bins", worst, len(binMags)))

	return nil
}
