package main

import (
	"fmt"

	"github.com/cwbudde/algo-eqctl/internal/cli"
)

// CoeffsCmd prints the per-band state after the last cycle.
type CoeffsCmd struct {
	KnobArgs
}

// Run executes the coeffs command.
func (c *CoeffsCmd) Run(g *Globals) error {
	p, err := c.run(g, ChannelMap{}, nil)
	if err != nil {
		return err
	}

	w := g.writer()
	cfg := p.Composer().Config()

	sign := "textbook (a1, a2 as designed)"
	if cfg.HardwareSignConvention {
		sign = "hardware (a1, a2 negated)"
	}

	cli.PrintKeyValue(w, "Sample rate", fmt.Sprintf("%g Hz", cfg.SampleRate))
	cli.PrintKeyValue(w, "Sign convention", sign)
	fmt.Fprintln(w, cli.BandTable(p.Composer().Bands()))

	return nil
}
