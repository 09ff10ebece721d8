package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"yeonmal/internal/output"
)

// View renders the form on the left and the live settlement on the right.
func (m Model) View() string {
	form := m.renderForm()
	results := m.renderResults()

	body := lipgloss.JoinHorizontal(lipgloss.Top, form, "  ", results)

	help := helpStyle.Render("tab/↑↓: 이동  space: 선택  esc: 종료")
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("연말정산 계산기"),
		body,
		help,
	)
}

func (m Model) renderForm() string {
	var b strings.Builder

	section := ""
	for i, f := range m.fields {
		if f.section != section {
			section = f.section
			b.WriteString(sectionStyle.Render(section) + "\n")
		}

		cursor := "  "
		label := labelStyle.Render(f.label)
		if i == m.focus {
			cursor = "> "
			label = focusedLabelStyle.Render(f.label)
		}

		switch f.kind {
		case fieldCheckbox:
			mark := "[ ]"
			if f.checked {
				mark = "[x]"
			}
			fmt.Fprintf(&b, "%s%s %s\n", cursor, mark, label)
		default:
			fmt.Fprintf(&b, "%s%s: %s %s\n", cursor, label, f.input.View(), f.unit)
		}
	}

	return b.String()
}

func (m Model) renderResults() string {
	r := m.result
	var b strings.Builder

	row := func(label string, value string) {
		fmt.Fprintf(&b, "%-14s %s\n", label, resultValueStyle.Render(value))
	}

	row("총급여", output.FormatWon(r.Salary))
	row("근로소득공제", output.FormatWon(r.LaborIncomeDeduction.Amount))
	row("인적공제", output.FormatWon(r.Exemption.TotalDeduction))
	row("연금보험료공제", output.FormatWon(r.Pension.TotalPension))
	row("특별소득공제", output.FormatWon(r.SpecialDeduction))
	row("그 밖의 공제", output.FormatWon(r.OtherDeduction))
	b.WriteString("\n")
	row("과세표준", output.FormatWon(r.TaxBase.TaxBase))
	row("산출세액", output.FormatWon(r.TaxBase.CalculatedTax))
	row("세액공제", output.FormatWon(r.Final.TotalTaxDeduction))
	row("결정세액", output.FormatWon(r.Final.FinalTax))
	b.WriteString("\n")
	if r.Final.TaxDifference >= 0 {
		row("추가 납부", output.FormatWon(r.Final.TaxDifference))
	} else {
		row("환급 예상", output.FormatWon(-r.Final.TaxDifference))
	}

	if !r.Housing.SavingsValid {
		b.WriteString("\n" + issueStyle.Render("※ "+r.Housing.SavingsMessage) + "\n")
	}
	if r.Card.Message != "" {
		b.WriteString(issueStyle.Render("※ "+r.Card.Message) + "\n")
	}
	for _, issue := range m.issues {
		b.WriteString(issueStyle.Render("※ "+issue.Message) + "\n")
	}

	return resultBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}
