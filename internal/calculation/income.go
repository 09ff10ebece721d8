package calculation

import (
	"github.com/shopspring/decimal"

	"yeonmal/internal/domain"
	"yeonmal/internal/money"
)

// laborIncomeBrackets is the statutory work-expense allowance table applied
// to gross salary. Amounts in won.
var laborIncomeBrackets = []Bracket{
	{Upper: 5_000_000, Base: 0, Rate: decimal.NewFromFloat(0.70)},
	{Upper: 15_000_000, Base: 3_500_000, Rate: decimal.NewFromFloat(0.40)},
	{Upper: 45_000_000, Base: 7_500_000, Rate: decimal.NewFromFloat(0.15)},
	{Upper: 100_000_000, Base: 12_000_000, Rate: decimal.NewFromFloat(0.05)},
	{Upper: OpenUpper, Base: 14_750_000, Rate: decimal.NewFromFloat(0.02)},
}

// LaborIncomeDeduction computes the labor-income deduction for a gross
// annual salary in won.
func LaborIncomeDeduction(salary money.Won) domain.LaborIncomeDeductionResult {
	r := EvaluateBrackets(money.FloorZero(salary), laborIncomeBrackets)
	return domain.LaborIncomeDeductionResult{
		Amount:  r.Amount,
		Formula: r.Formula,
	}
}
