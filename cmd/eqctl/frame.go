package main

import (
	"fmt"

	"github.com/cwbudde/algo-eqctl/internal/cli"
	"github.com/cwbudde/algo-eqctl/wire"
)

// FrameCmd prints the frame sent on the last cycle, or on every cycle
// with --all.
type FrameCmd struct {
	KnobArgs
	ChannelMap

	All    bool `help:"Print the frame of every cycle."`
	Decode bool `help:"Also print the decoded raw samples and Q2.14 words."`
}

// Run executes the frame command.
func (c *FrameCmd) Run(g *Globals) error {
	w := g.writer()

	var last []byte
	p, err := c.run(g, c.ChannelMap, func(cycle int, frame []byte) {
		if c.All {
			fmt.Fprintf(w, "%3d  %s\n", cycle, cli.Hex(frame))
		}
		last = append(last[:0], frame...)
	})
	if err != nil {
		return err
	}

	if !c.All {
		fmt.Fprintln(w, cli.Hex(last))
	}

	if !c.Decode {
		return nil
	}

	nBands := p.Composer().NumBands()
	nRaw := (len(last) - wire.SyncLen - nBands*wire.BandBytes) / wire.SampleBytes

	f, err := wire.Decode(last, nRaw, nBands)
	if err != nil {
		return err
	}

	cli.PrintKeyValue(w, "raw", fmt.Sprint(f.Raw))
	for i, b := range f.Bands {
		cli.PrintKeyValue(w, fmt.Sprintf("band %d", i), b.String())
	}

	return nil
}
