package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yeonmal/internal/domain"
	"yeonmal/internal/money"
)

func typeInto(t *testing.T, m Model, idx int, text string) Model {
	t.Helper()
	for m.focus != idx {
		m = m.moveFocus(1)
	}
	var model tea.Model = m
	for _, r := range text {
		model, _ = model.(Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return model.(Model)
}

func TestCurrentInputUnitBoundary(t *testing.T) {
	m := NewModel()
	m = typeInto(t, m, idxSalary, "5000")

	in := m.currentInput()

	// The form collects manwon; the engine receives won.
	assert.Equal(t, money.Won(50_000_000), in.Salary)
	assert.True(t, in.Exemptions.Self.Checked)
}

func TestCurrentInputSections(t *testing.T) {
	m := NewModel()
	m = typeInto(t, m, idxSalary, "5000")
	m = typeInto(t, m, idxChildren, "2")
	m = typeInto(t, m, idxCardCredit, "2000")

	in := m.currentInput()

	assert.Equal(t, domain.CountSelection{Checked: true, Count: 2}, in.Exemptions.Children)
	require.True(t, in.Other.CreditCard.Checked)
	assert.Equal(t, money.Manwon(2000), in.Other.CreditCard.Usage.Credit)
}

func TestRecalcLastWriteWins(t *testing.T) {
	m := NewModel()
	m = typeInto(t, m, idxSalary, "5000")
	staleSeq := m.seq
	m = typeInto(t, m, idxSalary, "0") // now 50000

	// The stale tick must not recompute.
	model, _ := m.Update(recalcMsg{Seq: staleSeq})
	assert.Equal(t, money.Won(0), model.(Model).result.Salary)

	model, _ = model.(Model).Update(recalcMsg{Seq: model.(Model).seq})
	assert.Equal(t, money.Won(500_000_000), model.(Model).result.Salary)
}

func TestCheckboxToggleSchedulesRecalc(t *testing.T) {
	m := NewModel()
	for m.focus != idxSpouse {
		m = m.moveFocus(1)
	}

	before := m.seq
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = model.(Model)

	assert.True(t, m.fields[idxSpouse].checked)
	assert.Greater(t, m.seq, before)
	assert.NotNil(t, cmd)
}

func TestIntAtIgnoresGarbage(t *testing.T) {
	m := NewModel()
	m = typeInto(t, m, idxSalary, "12,345")
	assert.EqualValues(t, 12_345, m.intAt(idxSalary))
}
