package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cwbudde/algo-eqctl/eq"
	"github.com/cwbudde/algo-eqctl/wire"
)

func newTestModel(t *testing.T, initial uint16) *TuneModel {
	t.Helper()

	c, err := eq.New()
	if err != nil {
		t.Fatal(err)
	}

	return NewTuneModel(c, initial)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNewTuneModelRunsFirstCycle(t *testing.T) {
	m := newTestModel(t, 5000)

	for i, v := range m.Raw {
		if v != 4095 {
			t.Fatalf("knob %d = %d, want clamp to 4095", i, v)
		}
	}

	if m.Cycles() != 1 {
		t.Fatalf("cycles = %d, want 1", m.Cycles())
	}

	if got, want := len(m.Frame()), wire.FrameLen(3, 3); got != want {
		t.Fatalf("frame length = %d, want %d", got, want)
	}
}

func TestSelectionWraps(t *testing.T) {
	m := newTestModel(t, 2048)

	m.Update(key("up"))
	if m.Selected != 2 {
		t.Fatalf("up from 0 selected %d, want 2", m.Selected)
	}

	m.Update(key("down"))
	m.Update(key("j"))
	if m.Selected != 1 {
		t.Fatalf("selected %d, want 1", m.Selected)
	}
}

func TestNudgeClamps(t *testing.T) {
	m := newTestModel(t, 10)

	m.Update(key("left"))
	if m.Raw[0] != 0 {
		t.Fatalf("raw = %d, want 0", m.Raw[0])
	}

	m.Update(key("m"))
	m.Update(key("L"))
	if m.Raw[0] != 4095 {
		t.Fatalf("raw = %d, want 4095", m.Raw[0])
	}

	m.Update(key("H"))
	m.Update(key("right"))
	if m.Raw[0] != 4095-256+16 {
		t.Fatalf("raw = %d, want %d", m.Raw[0], 4095-256+16)
	}

	m.Update(key("0"))
	if m.Raw[0] != 0 {
		t.Fatalf("raw = %d, want 0", m.Raw[0])
	}
}

func TestCycleMsgAdvancesComposer(t *testing.T) {
	m := newTestModel(t, 4095)

	m.Update(key("0"))
	for range 5 {
		_, cmd := m.Update(CycleMsg{})
		if cmd == nil {
			t.Fatal("cycle did not schedule the next tick")
		}
	}

	bands := m.composer.Bands()
	if bands[0].Smoothed != 0 || bands[0].GainDB != -15 {
		t.Fatalf("band 0 after full window: smoothed %d gain %g", bands[0].Smoothed, bands[0].GainDB)
	}

	if m.Frame()[2] != 0x00 || m.Frame()[3] != 0x00 {
		t.Fatalf("frame raw[0] = % X, want 00 00", m.Frame()[2:4])
	}

	if m.Cycles() != 6 {
		t.Fatalf("cycles = %d, want 6", m.Cycles())
	}

	m.Update(key("r"))
	if m.Cycles() != 0 || m.composer.NormalizedValues()[0] != 0.5 {
		t.Fatalf("reset left cycles %d, normalized %v", m.Cycles(), m.composer.NormalizedValues())
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, 0)

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not quit")
	}

	if m.View() != "" {
		t.Fatal("view not empty after quit")
	}
}

func TestViewShowsFrameAndSlots(t *testing.T) {
	m := newTestModel(t, 4095)
	view := m.View()

	for _, want := range []string{"eqctl tune", "AA 55 0F FF", "lowshelf@400Hz", "highshelf@2000Hz"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestSparkline(t *testing.T) {
	got := Sparkline([]float64{-10, -5, 0, 5, -20}, -10, 0)
	if want := " ▄██ "; got != want {
		t.Fatalf("Sparkline = %q, want %q", got, want)
	}

	if len([]rune(Sparkline(nil, 0, 1))) != 0 {
		t.Fatal("empty input produced glyphs")
	}
}

func TestKnobBar(t *testing.T) {
	if got := knobBar(0, 4095); got != strings.Repeat("░", knobWidth) {
		t.Fatalf("empty knob = %q", got)
	}

	if got := knobBar(4095, 4095); got != strings.Repeat("█", knobWidth) {
		t.Fatalf("full knob = %q", got)
	}
}
