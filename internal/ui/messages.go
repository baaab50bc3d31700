package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// CycleMsg triggers one polling cycle of the composer.
type CycleMsg time.Time

// DefaultCycleInterval is how often the tune view polls the simulated knobs.
const DefaultCycleInterval = 50 * time.Millisecond

func tickCycle(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return CycleMsg(t)
	})
}
