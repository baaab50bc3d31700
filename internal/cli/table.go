package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cwbudde/algo-eqctl/eq"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// BandHeaders are the columns of [BandTable].
var BandHeaders = []string{"Slot", "Band", "Smoothed", "Norm", "Gain dB", "b0 b1 b2 a1 a2 (float)", "Q2.14"}

// BandRows formats the per-slot diagnostics of a composer as table cells.
func BandRows(bands []eq.Band) [][]string {
	rows := make([][]string, len(bands))
	for i, b := range bands {
		gain := fmt.Sprintf("%.2f", b.GainDB)
		if b.Bypassed {
			gain = "bypass"
		}

		c := b.Coefficients
		rows[i] = []string{
			fmt.Sprint(i),
			b.Slot.String(),
			fmt.Sprint(b.Smoothed),
			fmt.Sprintf("%.3f", b.Normalized),
			gain,
			fmt.Sprintf("%+.5f %+.5f %+.5f %+.5f %+.5f", c.B0, c.B1, c.B2, c.A1, c.A2),
			b.Quantized.String(),
		}
	}

	return rows
}

// BandTable renders bands as a bordered table. Bypassed rows are dimmed.
func BandTable(bands []eq.Band) string {
	rows := BandRows(bands)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(mutedColor)).
		Headers(BandHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			if row >= 0 && row < len(bands) && bands[row].Bypassed {
				return cellStyle.Inherit(BypassStyle)
			}

			return cellStyle
		})

	return t.String()
}

// Hex formats b as space-separated upper-case byte pairs.
func Hex(b []byte) string {
	var sb strings.Builder
	for i, v := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", v)
	}

	return sb.String()
}
