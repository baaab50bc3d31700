// Command eqctl drives the knob-to-coefficient pipeline from the terminal.
//
// Usage:
//
//	eqctl [global flags] <command> [flags] [samples ...]
//
// Samples are raw ADC readings, one per band slot (or per channel with
// --channels). Every command runs enough polling cycles to fill the moving
// average unless --cycles says otherwise.
//
// Examples:
//
//	eqctl frame 4095 4095 4095
//	eqctl --hw-sign coeffs 0 2048 4095
//	eqctl frame --channels 5 --slot-channels 2,1,3 100 200 300 400 500
//	eqctl --six response --fft 1000 2000 3000 4000 0 4095
//	eqctl wav --out cut.wav 0 0 0
//	eqctl tune
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/cwbudde/algo-eqctl/dsp/control"
	"github.com/cwbudde/algo-eqctl/dsp/filter/design"
	"github.com/cwbudde/algo-eqctl/dsp/smooth"
	"github.com/cwbudde/algo-eqctl/eq"
	"github.com/cwbudde/algo-eqctl/internal/cli"
)

var version = "0.1.0"

// Globals are the pipeline settings shared by every command.
type Globals struct {
	SampleRate   float64 `name:"sample-rate" default:"${sample_rate}" help:"Sample rate of the filtering engine in Hz."`
	Six          bool    `help:"Use the six-band slot layout."`
	Window       int     `short:"w" default:"${window}" help:"Moving-average window in samples."`
	ADCMax       uint16  `name:"adc-max" default:"${adc_max}" help:"Full-scale ADC reading."`
	SnapFraction float64 `name:"snap-fraction" default:"${snap_fraction}" help:"Fraction of full scale that snaps to unity gain."`
	MaxCut       float64 `name:"max-cut" default:"${max_cut}" help:"Cut in dB at the bottom of the knob travel."`
	Bypass       float64 `default:"${bypass}" help:"Gains closer to 0 dB than this are sent as the identity section."`
	HWSign       bool    `name:"hw-sign" help:"Negate a1 and a2 for engines that add the feedback terms."`

	out io.Writer
}

// CLI defines the command-line interface
type CLI struct {
	Globals

	Version versionFlag `short:"v" help:"Show version information"`

	Frame    FrameCmd    `cmd:"" help:"Print the encoded frame as hex."`
	Coeffs   CoeffsCmd   `cmd:"" help:"Print per-band gains and coefficients."`
	Response ResponseCmd `cmd:"" help:"Print the magnitude response of the composed cascade."`
	Wav      WavCmd      `cmd:"" help:"Write the quantized cascade's impulse response to a WAV file."`
	Tune     TuneCmd     `cmd:"" help:"Turn simulated knobs interactively."`
}

type versionFlag bool

// BeforeReset prints the version and exits before command validation.
func (versionFlag) BeforeReset(app *kong.Kong, vars kong.Vars) error {
	cli.PrintVersion(vars["version"])
	app.Exit(0)

	return nil
}

func newParser(cliArgs *CLI, options ...kong.Option) (*kong.Kong, error) {
	defaults := eq.DefaultConfig()

	options = append([]kong.Option{
		kong.Name("eqctl"),
		kong.Description("Knob-to-biquad coefficient generator for multi-band EQ engines"),
		kong.UsageOnError(),
		kong.Vars{
			"version":       version,
			"sample_rate":   strconv.FormatFloat(defaults.SampleRate, 'g', -1, 64),
			"window":        strconv.Itoa(smooth.DefaultWindow),
			"adc_max":       strconv.Itoa(int(control.DefaultADCMax)),
			"snap_fraction": strconv.FormatFloat(control.DefaultSnapFraction, 'g', -1, 64),
			"max_cut":       strconv.FormatFloat(control.DefaultMaxCutDB, 'g', -1, 64),
			"bypass":        strconv.FormatFloat(design.DefaultBypassThresholdDB, 'g', -1, 64),
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	}, options...)

	return kong.New(cliArgs, options...)
}

func main() {
	cliArgs := &CLI{}

	parser, err := newParser(cliArgs)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	cliArgs.out = os.Stdout

	if err := ctx.Run(&cliArgs.Globals); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}

// Options converts the global flags into composer options.
func (g *Globals) Options() []eq.Option {
	slots := eq.ThreeBandSlots()
	if g.Six {
		slots = eq.SixBandSlots()
	}

	return []eq.Option{
		eq.WithSampleRate(g.SampleRate),
		eq.WithSlots(slots...),
		eq.WithWindow(g.Window),
		eq.WithADCMax(g.ADCMax),
		eq.WithSnapFraction(g.SnapFraction),
		eq.WithMaxCutDB(g.MaxCut),
		eq.WithBypassThresholdDB(g.Bypass),
		eq.WithHardwareSignConvention(g.HWSign),
	}
}

// Composer builds a reset composer from the global flags.
func (g *Globals) Composer() (*eq.Composer, error) {
	c, err := eq.New(g.Options()...)
	if err != nil {
		return nil, fmt.Errorf("configure pipeline: %w", err)
	}

	return c, nil
}

func (g *Globals) writer() io.Writer {
	if g.out == nil {
		return os.Stdout
	}

	return g.out
}
