package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"yeonmal/internal/domain"
	"yeonmal/internal/money"
)

// National pension contributions are assessed on a clamped monthly base.
const (
	pensionMonthlyFloor   = money.Won(350_000)
	pensionMonthlyCeiling = money.Won(5_900_000)
)

var (
	nationalPensionRate = decimal.NewFromFloat(0.045)
	publicPensionRate   = decimal.NewFromFloat(0.09)
)

// pensionSchemeOrder fixes the detail ordering across calls.
var pensionSchemeOrder = []domain.PensionScheme{
	domain.PensionNational,
	domain.PensionPublic,
	domain.PensionMilitary,
	domain.PensionPrivateSchool,
	domain.PensionPostOffice,
}

// PensionPremium computes the pension-premium deduction. Every checked scheme
// contributes; a non-zero entry amount is used verbatim, otherwise the premium
// is derived from salary at the scheme's rate. The deduction is 100% of the
// premium in effect.
func PensionPremium(sel domain.PensionSelections, salary money.Won) domain.PensionResult {
	var result domain.PensionResult

	for _, scheme := range pensionSchemeOrder {
		entry, ok := sel[scheme]
		if !ok || !entry.Checked {
			continue
		}

		if entry.Amount > 0 {
			result.TotalPension += entry.Amount
			result.Details = append(result.Details, domain.PensionDetail{
				Scheme: scheme,
				Amount: entry.Amount,
			})
			continue
		}

		amount, formula := autoPensionPremium(scheme, salary)
		result.TotalPension += amount
		result.Details = append(result.Details, domain.PensionDetail{
			Scheme:         scheme,
			Amount:         amount,
			AutoCalculated: true,
			Formula:        formula,
		})
	}

	return result
}

func autoPensionPremium(scheme domain.PensionScheme, salary money.Won) (money.Won, string) {
	monthly := money.Won(0)
	if salary > 0 {
		monthly = salary / 12
	}

	if scheme == domain.PensionNational {
		base := monthly
		if base < pensionMonthlyFloor {
			base = pensionMonthlyFloor
		}
		if base > pensionMonthlyCeiling {
			base = pensionMonthlyCeiling
		}
		amount := base.MulRate(nationalPensionRate) * 12
		return amount, fmt.Sprintf("월 보수 %s원 × 4.5%% × 12개월", base.Format())
	}

	amount := monthly.MulRate(publicPensionRate) * 12
	return amount, fmt.Sprintf("월 보수 %s원 × 9%% × 12개월", monthly.Format())
}
