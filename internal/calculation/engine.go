package calculation

import (
	"yeonmal/internal/domain"
	"yeonmal/internal/money"
)

// Engine runs the full settlement pipeline. It holds no state; it exists so
// collaborators (CLI, TUI, HTTP) share one entry point.
type Engine struct{}

// NewEngine creates a settlement engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Settle computes a complete settlement for one input snapshot. The input is
// never mutated; every call builds a fresh result.
func (e *Engine) Settle(in domain.SettlementInput) domain.SettlementResult {
	labor := LaborIncomeDeduction(in.Salary)
	exemption := PersonalExemption(in.Exemptions)
	pension := PensionPremium(in.Pensions, in.Salary)
	housing := HousingAggregateLimits(in.Special, in.Other)

	var card domain.CardDeductionResult
	if in.Other.CreditCard.Checked {
		card = CreditCardDeduction(in.Other.CreditCard.Usage, in.Salary.Manwon())
	}

	var special money.Won
	if in.Special.Insurance.Checked {
		special += in.Special.Insurance.Amount.Won()
	}
	special += housing.FinalAmounts.HousingRent.Won()
	special += housing.FinalAmounts.HousingLoan.Won()

	other := housing.FinalAmounts.HousingSavings.Won()
	if card.IsValid {
		other += card.Amount.Won()
	}

	taxBase := TaxBaseAndTax(TaxBaseInput{
		Salary:               in.Salary,
		LaborIncomeDeduction: labor.Amount,
		PersonalDeduction:    exemption.TotalDeduction,
		PensionDeduction:     pension.TotalPension,
		SpecialDeduction:     special,
		OtherDeduction:       other,
	})

	laborCredit := LaborIncomeTaxCredit(taxBase.CalculatedTax)
	credits, creditDetails := TaxCredits(in.Credits)
	if laborCredit.Deduction > 0 {
		credits["labor-income"] = laborCredit.Deduction
		creditDetails = append([]domain.DeductionDetail{{
			Label:   "근로소득 세액공제",
			Amount:  laborCredit.Deduction,
			Formula: laborCredit.Formula,
		}}, creditDetails...)
	}

	final := FinalSettlement(FinalSettlementInput{
		CalculatedTax:  taxBase.CalculatedTax,
		TaxReduction:   in.TaxReduction,
		TaxDeductions:  credits,
		CurrentPaidTax: in.CurrentPaidTax,
		PreviousTax:    in.PreviousTax,
	})
	final.Credits = creditDetails

	return domain.SettlementResult{
		Salary:               in.Salary,
		LaborIncomeDeduction: labor,
		Exemption:            exemption,
		Pension:              pension,
		Housing:              housing,
		Card:                 card,
		SpecialDeduction:     special,
		OtherDeduction:       other,
		TaxBase:              taxBase,
		Final:                final,
	}
}
