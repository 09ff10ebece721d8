package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"yeonmal/internal/domain"
	"yeonmal/internal/money"
)

// Housing deduction parameters, amounts in manwon.
const (
	housingSavingsCap = money.Manwon(300)
	housingRentCap    = money.Manwon(400)
	firstStageCap     = money.Manwon(400)
)

var housingDeductionRate = decimal.NewFromFloat(0.40)

// loanCapEraCutoff splits the loan cap table into the pre- and post-2012
// contract regimes.
var loanCapEraCutoff = time.Date(2012, time.January, 1, 0, 0, 0, 0, time.UTC)

// HousingSavingsDeduction computes the individually capped housing-savings
// deduction: 40% of the deposit, at most 300 manwon. Requires household-head
// status; non-heads get a zero amount with an explanatory message.
func HousingSavingsDeduction(in domain.HousingSavingsInput) (money.Manwon, bool, string) {
	if !in.Checked {
		return 0, true, ""
	}
	if !in.IsHouseholdHead {
		return 0, false, "주택청약저축 공제는 세대주만 신청할 수 있습니다"
	}
	return money.MinManwon(in.InputAmount.MulRate(housingDeductionRate), housingSavingsCap), true, ""
}

// HousingRentDeduction computes the individually capped housing-rent loan
// deduction: 40% of the repayment, at most 400 manwon.
func HousingRentDeduction(amount money.Manwon) money.Manwon {
	return money.MinManwon(amount.MulRate(housingDeductionRate), housingRentCap)
}

// HousingLoanCap returns the individual cap for the housing-purchase loan
// deduction, keyed on contract era, repayment period, interest type and
// repayment type. Amounts in manwon.
func HousingLoanCap(d domain.LoanDetails) money.Manwon {
	fixed := d.InterestType == domain.InterestFixed
	installment := d.RepaymentType == domain.RepaymentInstallment

	if !d.ContractDate.Before(loanCapEraCutoff) {
		longPeriod := d.RepaymentPeriod == domain.Repayment15 || d.RepaymentPeriod == domain.Repayment30
		switch {
		case longPeriod && fixed && installment:
			return 2000
		case longPeriod && (fixed || installment):
			return 1800
		case longPeriod:
			return 800
		case d.RepaymentPeriod == domain.Repayment10 && (fixed || installment):
			return 600
		default:
			return 0
		}
	}

	switch {
	case d.RepaymentPeriod == domain.Repayment15 && fixed && installment:
		return 2000
	case d.RepaymentPeriod == domain.Repayment15 && (fixed || installment):
		return 1800
	case d.RepaymentPeriod == domain.Repayment30:
		return 1500
	case d.RepaymentPeriod == domain.Repayment15:
		return 1000
	case d.RepaymentPeriod == domain.RepaymentLess:
		return 600
	default:
		return 0
	}
}

// firstStage applies the savings+rent aggregate cap. When the combined amount
// exceeds the cap both components are scaled proportionally, rounding each
// component half-up.
func firstStage(savings, rent money.Manwon) (money.Manwon, money.Manwon, domain.HousingFirstStage) {
	original := savings + rent
	stage := domain.HousingFirstStage{
		OriginalTotal: original,
		Total:         original,
	}
	if original <= firstStageCap {
		return savings, rent, stage
	}

	ratio := firstStageCap.Decimal().Div(original.Decimal())
	scaledSavings := money.ManwonFromDecimal(savings.Decimal().Mul(ratio))
	scaledRent := money.ManwonFromDecimal(rent.Decimal().Mul(ratio))

	stage.Total = scaledSavings + scaledRent
	stage.IsExceeded = true
	return scaledSavings, scaledRent, stage
}

// HousingAggregateLimits runs the two-stage aggregate cap over the three
// housing deductions. Stage one proportionally scales savings and rent to the
// shared 400 manwon cap; stage two caps stage one's result plus the purchase
// loan at the loan's individual cap, with the loan component alone absorbing
// any reduction.
func HousingAggregateLimits(special domain.SpecialDeductionInput, other domain.OtherDeductionInput) domain.HousingLimitResult {
	savings, savingsValid, savingsMsg := HousingSavingsDeduction(other.HousingSavings)

	var rent money.Manwon
	if special.HousingRent.Checked {
		rent = HousingRentDeduction(special.HousingRent.Amount)
	}

	scaledSavings, scaledRent, stage1 := firstStage(savings, rent)

	result := domain.HousingLimitResult{
		FirstStage:     stage1,
		SavingsValid:   savingsValid,
		SavingsMessage: savingsMsg,
		FinalAmounts: domain.HousingFinalAmounts{
			HousingSavings: scaledSavings,
			HousingRent:    scaledRent,
		},
	}

	if !special.HousingLoan.Checked {
		return result
	}

	loan := special.HousingLoan.InputAmount
	limit := HousingLoanCap(special.HousingLoan.Details)
	stage2 := domain.HousingSecondStage{
		OriginalAmount: stage1.Total + loan,
		Limit:          limit,
		HousingLoan:    loan,
	}
	if stage2.OriginalAmount > limit {
		// Stage one's result is never revisited; the loan absorbs the cut.
		stage2.HousingLoan = money.FloorZeroManwon(limit - stage1.Total)
		stage2.IsExceeded = true
	}

	result.SecondStage = stage2
	result.FinalAmounts.HousingLoan = stage2.HousingLoan
	return result
}
