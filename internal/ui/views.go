package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-eqctl/internal/cli"
)

const (
	curveColumns = 64
	knobWidth    = 24
)

var (
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	knobStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#0087AF"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Italic(true)
)

var curveGlyphs = []rune(" ▁▂▃▄▅▆▇█")

// View renders the knobs, the band table, the response curve and the frame.
func (m *TuneModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")
	b.WriteString(renderKnobs(m))
	b.WriteString("\n")
	b.WriteString(cli.BandTable(m.composer.Bands()))
	b.WriteString("\n\n")
	b.WriteString(renderCurve(m))
	b.WriteString("\n\n")
	b.WriteString(cli.KeyStyle.Render("frame: "))
	b.WriteString(cli.Hex(m.frame))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(cli.ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select  ←/→ ±16  pgup/pgdn ±256  0 min  m max  r reset  q quit"))

	return b.String()
}

func renderHeader(m *TuneModel) string {
	title := cli.TitleStyle.UnsetMarginBottom().Render("eqctl tune")

	subtitle := cli.KeyStyle.Italic(true).Render(fmt.Sprintf(
		"%d bands @ %g Hz, cycle %d", len(m.Raw), m.cfg.SampleRate, m.cycles))

	return title + "\n" + subtitle
}

func renderKnobs(m *TuneModel) string {
	var b strings.Builder

	for i, raw := range m.Raw {
		cursor := "  "
		if i == m.Selected {
			cursor = cursorStyle.Render("▶ ")
		}

		b.WriteString(cursor)
		fmt.Fprintf(&b, "%-22s %4d ", m.cfg.Slots[i].String(), raw)
		b.WriteString(knobStyle.Render(knobBar(raw, m.cfg.ADCMax)))
		b.WriteString("\n")
	}

	return b.String()
}

// knobBar draws raw as a horizontal bar of knobWidth cells.
func knobBar(raw, adcMax uint16) string {
	filled := 0
	if adcMax > 0 {
		filled = int(raw) * knobWidth / int(adcMax)
	}

	return strings.Repeat("█", filled) + strings.Repeat("░", knobWidth-filled)
}

func renderCurve(m *TuneModel) string {
	if len(m.curve) == 0 {
		return ""
	}

	floor := -m.cfg.MaxCutDB
	for _, v := range m.curve {
		floor = min(floor, v)
	}

	return fmt.Sprintf("%s %s  %s",
		cli.KeyStyle.Render(fmt.Sprintf("%6.1f dB", floor)),
		knobStyle.Render(Sparkline(m.curve, floor, 0)),
		cli.KeyStyle.Render("0 dB"))
}

// Sparkline maps each value in [lo, hi] onto a block glyph.
func Sparkline(values []float64, lo, hi float64) string {
	top := len(curveGlyphs) - 1
	out := make([]rune, len(values))

	for i, v := range values {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(top))
		}
		out[i] = curveGlyphs[max(0, min(idx, top))]
	}

	return string(out)
}
