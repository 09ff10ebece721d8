package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// recalcDebounce is how long input must settle before a recompute fires.
const recalcDebounce = 250 * time.Millisecond

// recalcMsg asks for a recomputation. Seq identifies the edit that scheduled
// it; only the latest scheduled recompute runs (last write wins).
type recalcMsg struct {
	Seq int
}

func scheduleRecalc(seq int) tea.Cmd {
	return tea.Tick(recalcDebounce, func(time.Time) tea.Msg {
		return recalcMsg{Seq: seq}
	})
}
