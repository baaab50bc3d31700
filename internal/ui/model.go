// Package ui provides the Bubbletea knob simulator behind "eqctl tune".
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cwbudde/algo-eqctl/dsp/fixed"
	"github.com/cwbudde/algo-eqctl/eq"
	"github.com/cwbudde/algo-eqctl/measure/response"
	"github.com/cwbudde/algo-eqctl/wire"
)

const (
	fineStep   = 16
	coarseStep = 256
)

// TuneModel simulates one knob per band slot. Arrow keys move the selected
// knob; every tick runs one composer cycle so the moving average is visible.
type TuneModel struct {
	composer *eq.Composer
	cfg      eq.Config

	// Raw holds the simulated knob positions, one per slot.
	Raw      []uint16
	Selected int
	Interval time.Duration

	set      fixed.BandSet
	frame    []byte
	curve    []float64
	freqs    []float64
	cycles   int
	err      error
	quitting bool

	Width  int
	Height int
}

// NewTuneModel starts every knob at initial, clamped to the ADC range.
func NewTuneModel(c *eq.Composer, initial uint16) *TuneModel {
	cfg := c.Config()
	if initial > cfg.ADCMax {
		initial = cfg.ADCMax
	}

	raw := make([]uint16, c.NumBands())
	for i := range raw {
		raw[i] = initial
	}

	m := &TuneModel{
		composer: c,
		cfg:      cfg,
		Raw:      raw,
		Interval: DefaultCycleInterval,
		set:      make(fixed.BandSet, len(raw)),
		freqs:    response.LogFrequencies(curveColumns, response.DefaultLowerHz, cfg.SampleRate/2),
	}
	m.Cycle()

	return m
}

// Init starts the polling ticker.
func (m *TuneModel) Init() tea.Cmd {
	return tickCycle(m.Interval)
}

// Update handles key presses and polling ticks.
func (m *TuneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			m.Select(m.Selected - 1)
		case "down", "j", "tab":
			m.Select(m.Selected + 1)
		case "left", "h":
			m.Nudge(-fineStep)
		case "right", "l":
			m.Nudge(fineStep)
		case "pgdown", "H":
			m.Nudge(-coarseStep)
		case "pgup", "L":
			m.Nudge(coarseStep)
		case "0":
			m.Raw[m.Selected] = 0
		case "m":
			m.Raw[m.Selected] = m.cfg.ADCMax
		case "r":
			m.composer.Reset()
			m.cycles = 0
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case CycleMsg:
		m.Cycle()
		return m, tickCycle(m.Interval)
	}

	return m, nil
}

// Select moves the cursor to slot i, wrapping at both ends.
func (m *TuneModel) Select(i int) {
	n := len(m.Raw)
	m.Selected = ((i % n) + n) % n
}

// Nudge moves the selected knob by delta, clamped to [0, ADCMax].
func (m *TuneModel) Nudge(delta int) {
	v := int(m.Raw[m.Selected]) + delta
	v = max(0, min(v, int(m.cfg.ADCMax)))
	m.Raw[m.Selected] = uint16(v)
}

// Cycle runs one composer update with the current knob positions and
// refreshes the frame and response curve.
func (m *TuneModel) Cycle() {
	if err := m.composer.UpdateInto(m.set, m.Raw); err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.cycles++
	m.frame = wire.AppendFrame(m.frame[:0], m.Raw, m.set)
	m.curve = response.TotalMagnitudeDB(m.composer.Coefficients(), m.freqs, m.cfg.SampleRate)
}

// Frame returns the frame produced by the last cycle.
func (m *TuneModel) Frame() []byte {
	return m.frame
}

// Cycles returns the number of completed cycles since the last reset.
func (m *TuneModel) Cycles() int {
	return m.cycles
}

// Err returns the error of the last cycle, if any.
func (m *TuneModel) Err() error {
	return m.err
}
