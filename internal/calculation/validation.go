package calculation

import (
	"fmt"

	"yeonmal/internal/domain"
	"yeonmal/internal/money"
)

// Sanity ceilings for the advisory validation pass. Calculation is always
// total: these checks only flag suspicious figures, they never block a
// computation.
const (
	pensionSanityCeiling = money.Won(10_000_000)
	savingsSanityCeiling = money.Manwon(1000)
)

// ValidatePension reports advisory issues with the pension form state.
func ValidatePension(sel domain.PensionSelections) []domain.ValidationIssue {
	var issues []domain.ValidationIssue

	checked := 0
	for _, scheme := range pensionSchemeOrder {
		entry, ok := sel[scheme]
		if !ok || !entry.Checked {
			continue
		}
		checked++
		if entry.Amount > pensionSanityCeiling {
			issues = append(issues, domain.ValidationIssue{
				Field: string(scheme),
				Message: fmt.Sprintf("연금보험료 %s원은 상한(%s원)을 초과합니다",
					entry.Amount.Format(), pensionSanityCeiling.Format()),
			})
		}
		if entry.Amount < 0 {
			issues = append(issues, domain.ValidationIssue{
				Field:   string(scheme),
				Message: "연금보험료는 음수일 수 없습니다",
			})
		}
	}

	// Schemes are mutually exclusive under the law; the calculator still sums
	// every checked scheme, so surface the conflict instead of fixing it.
	if checked > 1 {
		issues = append(issues, domain.ValidationIssue{
			Field:   "pensions",
			Message: "연금 항목은 하나만 선택할 수 있습니다",
		})
	}

	return issues
}

// ValidateOtherDeduction reports advisory issues with the other-deduction
// form state.
func ValidateOtherDeduction(in domain.OtherDeductionInput) []domain.ValidationIssue {
	var issues []domain.ValidationIssue

	if in.HousingSavings.Checked && in.HousingSavings.InputAmount > savingsSanityCeiling {
		issues = append(issues, domain.ValidationIssue{
			Field: "housingSavings",
			Message: fmt.Sprintf("주택청약저축 납입액 %s만원은 상한(%s만원)을 초과합니다",
				in.HousingSavings.InputAmount.Format(), savingsSanityCeiling.Format()),
		})
	}

	if in.CreditCard.Checked {
		usage := in.CreditCard.Usage
		for _, c := range []struct {
			field  string
			amount money.Manwon
		}{
			{"credit", usage.Credit},
			{"check", usage.Check},
			{"traditional", usage.Traditional},
			{"transport", usage.Transport},
			{"culture", usage.Culture},
			{"lastYear", usage.LastYear},
		} {
			if c.amount < 0 {
				issues = append(issues, domain.ValidationIssue{
					Field:   "creditCard." + c.field,
					Message: "카드 사용액은 음수일 수 없습니다",
				})
			}
		}
	}

	return issues
}

// ValidateInput runs every advisory validation over a full input snapshot.
func ValidateInput(in domain.SettlementInput) []domain.ValidationIssue {
	var issues []domain.ValidationIssue
	if in.Salary < 0 {
		issues = append(issues, domain.ValidationIssue{
			Field:   "salary",
			Message: "총급여는 음수일 수 없습니다",
		})
	}
	issues = append(issues, ValidatePension(in.Pensions)...)
	issues = append(issues, ValidateOtherDeduction(in.Other)...)
	return issues
}
