package calculation

import (
	"github.com/shopspring/decimal"

	"yeonmal/internal/domain"
	"yeonmal/internal/money"
)

// progressiveTaxBrackets is the national income tax table. Amounts in won.
var progressiveTaxBrackets = []Bracket{
	{Upper: 14_000_000, Base: 0, Rate: decimal.NewFromFloat(0.06)},
	{Upper: 50_000_000, Base: 840_000, Rate: decimal.NewFromFloat(0.15)},
	{Upper: 88_000_000, Base: 6_240_000, Rate: decimal.NewFromFloat(0.24)},
	{Upper: 150_000_000, Base: 15_360_000, Rate: decimal.NewFromFloat(0.35)},
	{Upper: 300_000_000, Base: 37_060_000, Rate: decimal.NewFromFloat(0.38)},
	{Upper: 500_000_000, Base: 94_060_000, Rate: decimal.NewFromFloat(0.40)},
	{Upper: 1_000_000_000, Base: 174_060_000, Rate: decimal.NewFromFloat(0.42)},
	{Upper: OpenUpper, Base: 384_060_000, Rate: decimal.NewFromFloat(0.45)},
}

// aggregateDeductionCeiling caps the combined special and other deductions;
// anything above it is clawed back into the tax base.
const aggregateDeductionCeiling = money.Won(25_000_000)

// TaxBaseInput aggregates every deduction feeding the tax base, all in won.
type TaxBaseInput struct {
	Salary               money.Won
	LaborIncomeDeduction money.Won
	PersonalDeduction    money.Won
	PensionDeduction     money.Won
	SpecialDeduction     money.Won
	OtherDeduction       money.Won
}

// TaxBaseAndTax computes the taxable base and the progressive tax on it.
func TaxBaseAndTax(in TaxBaseInput) domain.TaxBaseResult {
	laborIncome := money.FloorZero(in.Salary - in.LaborIncomeDeduction)

	excess := money.FloorZero(in.SpecialDeduction + in.OtherDeduction - aggregateDeductionCeiling)

	taxBase := money.FloorZero(laborIncome -
		in.PersonalDeduction -
		in.PensionDeduction -
		in.SpecialDeduction -
		in.OtherDeduction +
		excess)

	tax := EvaluateBrackets(taxBase, progressiveTaxBrackets)

	return domain.TaxBaseResult{
		LaborIncome:     laborIncome,
		TaxBase:         taxBase,
		CalculatedTax:   tax.Amount,
		TaxFormula:      tax.Formula,
		DeductionExcess: excess,
	}
}
