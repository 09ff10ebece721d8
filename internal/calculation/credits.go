package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"yeonmal/internal/domain"
	"yeonmal/internal/money"
)

// Labor-income tax credit: 55% up to the threshold, 30% above it.
const laborCreditThreshold = money.Won(1_300_000)

var (
	laborCreditLowRate  = decimal.NewFromFloat(0.55)
	laborCreditHighRate = decimal.NewFromFloat(0.30)
	creditRate          = decimal.NewFromFloat(0.15)
	rentCreditRate      = decimal.NewFromFloat(0.10)
)

// Per-credit caps in won.
const (
	childCreditEach   = money.Won(150_000)
	childCreditCap    = money.Won(300_000)
	standardCreditCap = money.Won(300_000)
	rentCreditCap     = money.Won(750_000)
)

// LaborIncomeTaxCredit computes the labor-income tax credit on computed tax.
func LaborIncomeTaxCredit(calculatedTax money.Won) domain.LaborTaxCreditResult {
	tax := money.FloorZero(calculatedTax)

	if tax <= laborCreditThreshold {
		return domain.LaborTaxCreditResult{
			Deduction: tax.MulRate(laborCreditLowRate),
			Formula:   fmt.Sprintf("%s원 × 55%%", tax.Format()),
		}
	}

	base := laborCreditThreshold.MulRate(laborCreditLowRate)
	return domain.LaborTaxCreditResult{
		Deduction: base + (tax - laborCreditThreshold).MulRate(laborCreditHighRate),
		Formula: fmt.Sprintf("%s원 + (%s원 - %s원) × 30%%",
			base.Format(), tax.Format(), laborCreditThreshold.Format()),
	}
}

// TaxCredits evaluates every other tax credit, each independently capped, and
// returns the per-credit breakdown keyed for FinalSettlement.
func TaxCredits(in domain.TaxCreditInput) (map[string]money.Won, []domain.DeductionDetail) {
	credits := map[string]money.Won{}
	var details []domain.DeductionDetail

	add := func(key, label string, amount money.Won) {
		if amount <= 0 {
			return
		}
		credits[key] = amount
		details = append(details, domain.DeductionDetail{Label: label, Amount: amount})
	}

	if in.ChildCount > 0 {
		add("child", "자녀 세액공제",
			money.MinWon(childCreditEach*money.Won(in.ChildCount), childCreditCap))
	}
	add("pension-account", "연금계좌 세액공제",
		money.MinWon(in.PensionAccount.MulRate(creditRate), standardCreditCap))
	if in.RentMonths > 0 {
		rent := in.MonthlyRent * money.Won(in.RentMonths)
		add("rent", "월세 세액공제",
			money.MinWon(rent.MulRate(rentCreditRate), rentCreditCap))
	}
	add("isa", "ISA 세액공제",
		money.MinWon(in.ISAAmount.MulRate(creditRate), standardCreditCap))
	add("medical", "의료비 세액공제",
		money.MinWon(in.MedicalExpenses.MulRate(creditRate), standardCreditCap))
	add("education", "교육비 세액공제",
		money.MinWon(in.EducationExpenses.MulRate(creditRate), standardCreditCap))
	add("donation", "기부금 세액공제",
		money.MinWon(in.DonationAmount.MulRate(creditRate), standardCreditCap))

	return credits, details
}

// FinalSettlementInput feeds the final settlement, all amounts in won.
type FinalSettlementInput struct {
	CalculatedTax  money.Won
	TaxReduction   money.Won
	TaxDeductions  map[string]money.Won
	CurrentPaidTax money.Won
	PreviousTax    money.Won
}

// FinalSettlement sums all tax credits, floors the final tax at zero and
// compares it against the tax already paid. The difference is signed:
// positive means additional payment, negative a refund.
func FinalSettlement(in FinalSettlementInput) domain.FinalTaxResult {
	var totalDeduction money.Won
	for _, amount := range in.TaxDeductions {
		totalDeduction += amount
	}

	finalTax := money.FloorZero(in.CalculatedTax - in.TaxReduction - totalDeduction)
	totalPaid := in.CurrentPaidTax + in.PreviousTax

	return domain.FinalTaxResult{
		CalculatedTax:     in.CalculatedTax,
		TaxReduction:      in.TaxReduction,
		TotalTaxDeduction: totalDeduction,
		FinalTax:          finalTax,
		TotalPaidTax:      totalPaid,
		TaxDifference:     finalTax - totalPaid,
	}
}
