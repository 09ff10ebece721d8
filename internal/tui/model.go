// Package tui is an interactive settlement form. Edits are debounced and the
// whole settlement is recomputed from the current snapshot; the engine stays
// free of any UI state.
package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"yeonmal/internal/calculation"
	"yeonmal/internal/domain"
	"yeonmal/internal/money"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldCheckbox
)

type field struct {
	label   string
	unit    string
	section string
	kind    fieldKind
	input   textinput.Model
	checked bool
}

// Field indices; the order is the form's tab order.
const (
	idxSalary = iota
	idxSpouse
	idxChildren
	idxSenior
	idxDisabled
	idxSingleParent
	idxFemale
	idxNationalPension
	idxPensionAmount
	idxInsurance
	idxHousingRent
	idxHousingLoan
	idxHousingSavings
	idxHouseholdHead
	idxCardCredit
	idxCardCheck
	idxCardTraditional
	idxCardTransport
	idxCardCulture
	idxCardLastYear
	idxChildCount
	idxMedical
	idxDonation
	idxPaidTax
	fieldCount
)

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "down", "enter")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up")),
		Toggle: key.NewBinding(key.WithKeys(" ")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc")),
	}
}

// Model is the full TUI state: the form fields plus the latest result.
type Model struct {
	engine *calculation.Engine
	fields []field
	focus  int
	seq    int

	result domain.SettlementResult
	issues []domain.ValidationIssue

	width  int
	height int
	keys   keyMap
}

// NewModel builds the form with its initial state (self exemption applied).
func NewModel() Model {
	m := Model{
		engine: calculation.NewEngine(),
		fields: make([]field, fieldCount),
		keys:   defaultKeyMap(),
	}

	text := func(idx int, section, label, unit string) {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 12
		in.Width = 10
		m.fields[idx] = field{label: label, unit: unit, section: section, kind: fieldText, input: in}
	}
	checkbox := func(idx int, section, label string) {
		m.fields[idx] = field{label: label, section: section, kind: fieldCheckbox}
	}

	text(idxSalary, "급여", "총급여", "만원")

	checkbox(idxSpouse, "인적공제", "배우자")
	text(idxChildren, "인적공제", "자녀", "명")
	text(idxSenior, "인적공제", "경로우대", "명")
	text(idxDisabled, "인적공제", "장애인", "명")
	checkbox(idxSingleParent, "인적공제", "한부모")
	checkbox(idxFemale, "인적공제", "부녀자")

	checkbox(idxNationalPension, "연금보험료", "국민연금")
	text(idxPensionAmount, "연금보험료", "납입액(미입력시 자동계산)", "원")

	text(idxInsurance, "특별공제", "보험료", "만원")
	text(idxHousingRent, "특별공제", "주택임차차입금 원리금", "만원")
	text(idxHousingLoan, "특별공제", "장기주택저당차입금 이자", "만원")

	text(idxHousingSavings, "그 밖의 공제", "주택청약저축 납입액", "만원")
	checkbox(idxHouseholdHead, "그 밖의 공제", "세대주")
	text(idxCardCredit, "그 밖의 공제", "신용카드", "만원")
	text(idxCardCheck, "그 밖의 공제", "체크카드·현금영수증", "만원")
	text(idxCardTraditional, "그 밖의 공제", "전통시장", "만원")
	text(idxCardTransport, "그 밖의 공제", "대중교통", "만원")
	text(idxCardCulture, "그 밖의 공제", "도서·공연 등", "만원")
	text(idxCardLastYear, "그 밖의 공제", "작년 사용액", "만원")

	text(idxChildCount, "세액공제", "자녀 세액공제", "명")
	text(idxMedical, "세액공제", "의료비", "원")
	text(idxDonation, "세액공제", "기부금", "원")

	text(idxPaidTax, "납부세액", "기납부세액", "원")

	m.fields[idxSalary].input.Focus()
	return m
}

// Init starts cursor blinking and performs the first calculation.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, scheduleRecalc(m.seq))
}

// tuiLoanDetails is the fixed loan assumption the form uses: a post-2012
// fixed-rate installment loan over 15 years (the 2000 manwon cap).
var tuiLoanDetails = domain.LoanDetails{
	ContractDate:    time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC),
	RepaymentPeriod: domain.Repayment15,
	InterestType:    domain.InterestFixed,
	RepaymentType:   domain.RepaymentInstallment,
}

// currentInput assembles the engine input from the form snapshot. The form
// collects salary in manwon and converts at this boundary.
func (m Model) currentInput() domain.SettlementInput {
	in := domain.DefaultSettlementInput()

	in.Salary = money.Manwon(m.intAt(idxSalary)).Won()

	in.Exemptions.Spouse = domain.CountSelection{Checked: m.fields[idxSpouse].checked}
	in.Exemptions.Children = countSelection(m.intAt(idxChildren))
	in.Exemptions.Senior = countSelection(m.intAt(idxSenior))
	in.Exemptions.Disabled = countSelection(m.intAt(idxDisabled))
	in.Exemptions.SingleParent = domain.CountSelection{Checked: m.fields[idxSingleParent].checked}
	in.Exemptions.Female = domain.CountSelection{Checked: m.fields[idxFemale].checked}

	if m.fields[idxNationalPension].checked {
		in.Pensions[domain.PensionNational] = domain.PensionEntry{
			Checked: true,
			Amount:  money.Won(m.intAt(idxPensionAmount)),
		}
	}

	if v := m.intAt(idxInsurance); v > 0 {
		in.Special.Insurance = domain.CheckedAmount{Checked: true, Amount: money.Manwon(v)}
	}
	if v := m.intAt(idxHousingRent); v > 0 {
		in.Special.HousingRent = domain.CheckedAmount{Checked: true, Amount: money.Manwon(v)}
	}
	if v := m.intAt(idxHousingLoan); v > 0 {
		in.Special.HousingLoan = domain.HousingLoanInput{
			Checked:     true,
			InputAmount: money.Manwon(v),
			Details:     tuiLoanDetails,
		}
	}

	if v := m.intAt(idxHousingSavings); v > 0 {
		in.Other.HousingSavings = domain.HousingSavingsInput{
			Checked:         true,
			InputAmount:     money.Manwon(v),
			IsHouseholdHead: m.fields[idxHouseholdHead].checked,
		}
	}

	usage := domain.CardUsage{
		Credit:      money.Manwon(m.intAt(idxCardCredit)),
		Check:       money.Manwon(m.intAt(idxCardCheck)),
		Traditional: money.Manwon(m.intAt(idxCardTraditional)),
		Transport:   money.Manwon(m.intAt(idxCardTransport)),
		Culture:     money.Manwon(m.intAt(idxCardCulture)),
		LastYear:    money.Manwon(m.intAt(idxCardLastYear)),
	}
	if usage.Total() > 0 {
		in.Other.CreditCard = domain.CreditCardInput{Checked: true, Usage: usage}
	}

	in.Credits.ChildCount = int(m.intAt(idxChildCount))
	in.Credits.MedicalExpenses = money.Won(m.intAt(idxMedical))
	in.Credits.DonationAmount = money.Won(m.intAt(idxDonation))

	in.CurrentPaidTax = money.Won(m.intAt(idxPaidTax))

	return in
}

func countSelection(n int64) domain.CountSelection {
	return domain.CountSelection{Checked: n > 0, Count: int(n)}
}

// intAt parses a text field as a non-negative integer; anything unparsable
// counts as zero.
func (m Model) intAt(idx int) int64 {
	s := strings.ReplaceAll(strings.TrimSpace(m.fields[idx].input.Value()), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
