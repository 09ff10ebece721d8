package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"yeonmal/internal/calculation"
)

// Update handles all messages and drives the edit → debounce → recompute
// cycle.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case recalcMsg:
		// A newer edit superseded this tick; its own tick is still pending.
		if msg.Seq != m.seq {
			return m, nil
		}
		input := m.currentInput()
		m.result = m.engine.Settle(input)
		m.issues = calculation.ValidateInput(input)
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1), nil

	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1), nil

	case key.Matches(msg, m.keys.Toggle) && m.fields[m.focus].kind == fieldCheckbox:
		m.fields[m.focus].checked = !m.fields[m.focus].checked
		m.seq++
		return m, scheduleRecalc(m.seq)
	}

	return m.updateFocusedInput(msg)
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := &m.fields[m.focus]
	if f.kind != fieldText {
		return m, nil
	}

	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)

	if f.input.Value() != before {
		m.seq++
		return m, tea.Batch(cmd, scheduleRecalc(m.seq))
	}
	return m, cmd
}

func (m Model) moveFocus(delta int) Model {
	if f := &m.fields[m.focus]; f.kind == fieldText {
		f.input.Blur()
	}

	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)

	if f := &m.fields[m.focus]; f.kind == fieldText {
		f.input.Focus()
	}
	return m
}
