package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"yeonmal/internal/domain"
	"yeonmal/internal/money"
)

// Card deduction parameters. Salary and usage figures are in manwon.
const (
	cardSalaryTier     = money.Manwon(7000) // culture rate and cap switch here
	cardCapLow         = money.Manwon(300)
	cardCapHigh        = money.Manwon(250)
	cardSpecialCapLow  = money.Manwon(300)
	cardSpecialCapHigh = money.Manwon(200)
	cardBonusCap       = 100 // manwon, also the additional sub-cap
)

var (
	cardMinimumUsageRate = decimal.NewFromFloat(0.25)
	cardRateCredit       = decimal.NewFromFloat(0.15)
	cardRateCheck        = decimal.NewFromFloat(0.30)
	cardRateTraditional  = decimal.NewFromFloat(0.40)
	cardRateTransport    = decimal.NewFromFloat(0.40)
	cardRateCulture      = decimal.NewFromFloat(0.30)
	cardBonusThreshold   = decimal.NewFromFloat(1.05)
	cardBonusRate        = decimal.NewFromFloat(0.10)
)

// CreditCardDeduction computes the card-usage deduction for one year of
// usage. Salary is in manwon; the result amount is in manwon with fractional
// intermediates exposed in Details.
func CreditCardDeduction(usage domain.CardUsage, salary money.Manwon) domain.CardDeductionResult {
	if salary <= 0 {
		return domain.CardDeductionResult{
			Message: "총급여를 입력해야 카드 공제를 계산할 수 있습니다",
		}
	}

	total := usage.Total()
	if total <= 0 {
		return domain.CardDeductionResult{
			Message: "카드 사용액이 없습니다",
		}
	}

	minimumUsage := salary.Decimal().Mul(cardMinimumUsageRate)
	if !total.Decimal().GreaterThan(minimumUsage) {
		shortfall := minimumUsage.Sub(total.Decimal())
		return domain.CardDeductionResult{
			Message: fmt.Sprintf(
				"총 사용액이 최저사용금액(총급여의 25%%, %s만원)을 초과해야 합니다. %s만원 부족",
				minimumUsage.StringFixed(0), shortfall.StringFixed(0)),
			Details: domain.CardDeductionDetails{
				TotalUsage:   total,
				MinimumUsage: minimumUsage,
			},
		}
	}

	cultureRate := cardRateCulture
	if salary > cardSalaryTier {
		cultureRate = decimal.Zero
	}

	details := domain.CardDeductionDetails{
		TotalUsage:   total,
		MinimumUsage: minimumUsage,
		Credit:       usage.Credit.Decimal().Mul(cardRateCredit),
		Check:        usage.Check.Decimal().Mul(cardRateCheck),
		Traditional:  usage.Traditional.Decimal().Mul(cardRateTraditional),
		Transport:    usage.Transport.Decimal().Mul(cardRateTransport),
		Culture:      usage.Culture.Decimal().Mul(cultureRate),
	}

	details.MinimumDeduction = minimumDeductionEquivalent(usage, minimumUsage)
	details.IncreaseBonus = annualIncreaseBonus(total, usage.LastYear)

	categorySum := details.Credit.
		Add(details.Check).
		Add(details.Traditional).
		Add(details.Transport).
		Add(details.Culture)

	base := categorySum.Sub(details.MinimumDeduction).Add(details.IncreaseBonus)
	if base.IsNegative() {
		base = decimal.Zero
	}
	details.BaseDeduction = base

	cap, specialCap := cardCapLow, cardSpecialCapLow
	if salary > cardSalaryTier {
		cap, specialCap = cardCapHigh, cardSpecialCapHigh
	}
	details.Cap = cap

	final := base
	if base.GreaterThan(cap.Decimal()) {
		details.IsExceeded = true
		excess := base.Sub(cap.Decimal())

		// Special categories (traditional, transport, culture) carry the
		// excess up to their own sub-cap; the increase bonus carries what
		// remains, up to 100 manwon.
		specialDeductions := details.Traditional.Add(details.Transport).Add(details.Culture)
		specialAllowance := decimal.Min(specialDeductions, specialCap.Decimal())
		details.SpecialExcess = decimal.Min(excess, specialAllowance)

		remaining := excess.Sub(details.SpecialExcess)
		bonusAllowance := decimal.Min(details.IncreaseBonus, decimal.NewFromInt(cardBonusCap))
		details.AdditionalExcess = decimal.Min(remaining, bonusAllowance)

		final = cap.Decimal().Add(details.SpecialExcess).Add(details.AdditionalExcess)
	}

	result := domain.CardDeductionResult{
		Amount:  money.ManwonFromDecimal(final),
		IsValid: true,
		Details: details,
	}
	if details.IsExceeded {
		result.Message = fmt.Sprintf("공제 한도(%s만원)를 초과하여 조정되었습니다", cap.Format())
	}
	return result
}

// minimumDeductionEquivalent converts the minimum-usage threshold into a
// deduction amount by consuming it against the lowest-rate categories first:
// credit (15%), then check plus culture (30%), then traditional plus
// transport (40%).
func minimumDeductionEquivalent(usage domain.CardUsage, minimumUsage decimal.Decimal) decimal.Decimal {
	tiers := []struct {
		usage money.Manwon
		rate  decimal.Decimal
	}{
		{usage.Credit, cardRateCredit},
		{usage.Check + usage.Culture, cardRateCheck},
		{usage.Traditional + usage.Transport, cardRateTraditional},
	}

	remaining := minimumUsage
	deduction := decimal.Zero
	for _, tier := range tiers {
		if !remaining.IsPositive() {
			break
		}
		consumed := decimal.Min(remaining, tier.usage.Decimal())
		deduction = deduction.Add(consumed.Mul(tier.rate))
		remaining = remaining.Sub(consumed)
	}
	return deduction
}

// annualIncreaseBonus rewards usage growth beyond 5% over last year: 10% of
// the amount above 105% of last year's usage, capped at 100 manwon.
func annualIncreaseBonus(total, lastYear money.Manwon) decimal.Decimal {
	if lastYear <= 0 {
		return decimal.Zero
	}
	threshold := lastYear.Decimal().Mul(cardBonusThreshold)
	if !total.Decimal().GreaterThan(threshold) {
		return decimal.Zero
	}
	bonus := total.Decimal().Sub(threshold).Mul(cardBonusRate)
	return decimal.Min(bonus, decimal.NewFromInt(cardBonusCap))
}
