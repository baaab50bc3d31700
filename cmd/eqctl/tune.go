package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cwbudde/algo-eqctl/internal/ui"
)

// TuneCmd opens the interactive knob simulator.
type TuneCmd struct {
	Initial  uint16        `default:"${adc_max}" help:"Starting position of every knob."`
	Interval time.Duration `default:"50ms" help:"Polling interval of the simulated cycle."`
}

// Run executes the tune command.
func (c *TuneCmd) Run(g *Globals) error {
	comp, err := g.Composer()
	if err != nil {
		return err
	}

	model := ui.NewTuneModel(comp, c.Initial)
	if c.Interval > 0 {
		model.Interval = c.Interval
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("UI error: %w", err)
	}

	return nil
}
