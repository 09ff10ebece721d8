package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"yeonmal/internal/domain"
	"yeonmal/internal/money"
)

func loanDetails(contract time.Time, period domain.RepaymentPeriod, interest domain.InterestType, repayment domain.RepaymentType) domain.LoanDetails {
	return domain.LoanDetails{
		ContractDate:    contract,
		RepaymentPeriod: period,
		InterestType:    interest,
		RepaymentType:   repayment,
	}
}

var (
	post2012 = time.Date(2015, time.March, 1, 0, 0, 0, 0, time.UTC)
	pre2012  = time.Date(2010, time.June, 1, 0, 0, 0, 0, time.UTC)
)

func TestHousingLoanCap(t *testing.T) {
	tests := []struct {
		name     string
		details  domain.LoanDetails
		expected money.Manwon
	}{
		{"post-2012 fixed and installment 15y", loanDetails(post2012, domain.Repayment15, domain.InterestFixed, domain.RepaymentInstallment), 2000},
		{"post-2012 fixed and installment 30y", loanDetails(post2012, domain.Repayment30, domain.InterestFixed, domain.RepaymentInstallment), 2000},
		{"post-2012 fixed only 15y", loanDetails(post2012, domain.Repayment15, domain.InterestFixed, domain.RepaymentOther), 1800},
		{"post-2012 installment only 30y", loanDetails(post2012, domain.Repayment30, domain.InterestVariable, domain.RepaymentInstallment), 1800},
		{"post-2012 other repayment 15y", loanDetails(post2012, domain.Repayment15, domain.InterestVariable, domain.RepaymentOther), 800},
		{"post-2012 10y fixed", loanDetails(post2012, domain.Repayment10, domain.InterestFixed, domain.RepaymentOther), 600},
		{"post-2012 10y variable other", loanDetails(post2012, domain.Repayment10, domain.InterestVariable, domain.RepaymentOther), 0},
		{"pre-2012 15y fixed and installment", loanDetails(pre2012, domain.Repayment15, domain.InterestFixed, domain.RepaymentInstallment), 2000},
		{"pre-2012 15y installment only", loanDetails(pre2012, domain.Repayment15, domain.InterestVariable, domain.RepaymentInstallment), 1800},
		{"pre-2012 30y any", loanDetails(pre2012, domain.Repayment30, domain.InterestVariable, domain.RepaymentOther), 1500},
		{"pre-2012 15y other combo", loanDetails(pre2012, domain.Repayment15, domain.InterestVariable, domain.RepaymentOther), 1000},
		{"pre-2012 under 10y", loanDetails(pre2012, domain.RepaymentLess, domain.InterestVariable, domain.RepaymentOther), 600},
		{"pre-2012 10y", loanDetails(pre2012, domain.Repayment10, domain.InterestVariable, domain.RepaymentOther), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HousingLoanCap(tt.details))
		})
	}
}

func TestHousingSavingsDeduction(t *testing.T) {
	amount, valid, _ := HousingSavingsDeduction(domain.HousingSavingsInput{
		Checked: true, InputAmount: 500, IsHouseholdHead: true,
	})
	assert.True(t, valid)
	assert.Equal(t, money.Manwon(200), amount)

	// 40% of 1000 would be 400 but the individual cap is 300.
	amount, valid, _ = HousingSavingsDeduction(domain.HousingSavingsInput{
		Checked: true, InputAmount: 1000, IsHouseholdHead: true,
	})
	assert.True(t, valid)
	assert.Equal(t, money.Manwon(300), amount)
}

func TestHousingSavingsRequiresHouseholdHead(t *testing.T) {
	amount, valid, msg := HousingSavingsDeduction(domain.HousingSavingsInput{
		Checked: true, InputAmount: 500, IsHouseholdHead: false,
	})
	assert.False(t, valid)
	assert.Equal(t, money.Manwon(0), amount)
	assert.NotEmpty(t, msg)
}

func TestHousingRentDeduction(t *testing.T) {
	assert.Equal(t, money.Manwon(200), HousingRentDeduction(500))
	assert.Equal(t, money.Manwon(400), HousingRentDeduction(2000))
}

// Stage one scales both components so their sum hits the cap exactly while
// preserving the original ratio.
func TestFirstStageProportionalScaling(t *testing.T) {
	savings, rent, stage := firstStage(350, 300)

	assert.True(t, stage.IsExceeded)
	assert.Equal(t, money.Manwon(650), stage.OriginalTotal)
	assert.Equal(t, money.Manwon(400), stage.Total)
	assert.Equal(t, money.Manwon(215), savings)
	assert.Equal(t, money.Manwon(185), rent)
}

func TestFirstStageUnderCap(t *testing.T) {
	savings, rent, stage := firstStage(100, 200)

	assert.False(t, stage.IsExceeded)
	assert.Equal(t, money.Manwon(100), savings)
	assert.Equal(t, money.Manwon(200), rent)
	assert.Equal(t, money.Manwon(300), stage.Total)
}

// Stage two never revisits stage one: the loan alone absorbs the reduction.
func TestSecondStageLoanAbsorbsReduction(t *testing.T) {
	special := domain.SpecialDeductionInput{
		HousingRent: domain.CheckedAmount{Checked: true, Amount: 2000}, // capped to 400
		HousingLoan: domain.HousingLoanInput{
			Checked:     true,
			InputAmount: 2000,
			Details:     loanDetails(post2012, domain.Repayment15, domain.InterestFixed, domain.RepaymentOther), // cap 1800
		},
	}

	r := HousingAggregateLimits(special, domain.OtherDeductionInput{})

	assert.Equal(t, money.Manwon(400), r.FirstStage.Total)
	assert.True(t, r.SecondStage.IsExceeded)
	assert.Equal(t, money.Manwon(2400), r.SecondStage.OriginalAmount)
	assert.Equal(t, money.Manwon(1800), r.SecondStage.Limit)
	assert.Equal(t, money.Manwon(1400), r.SecondStage.HousingLoan)
	assert.Equal(t, money.Manwon(400), r.FinalAmounts.HousingRent)
	assert.Equal(t, money.Manwon(1400), r.FinalAmounts.HousingLoan)
}

func TestSecondStageUnderLimit(t *testing.T) {
	special := domain.SpecialDeductionInput{
		HousingLoan: domain.HousingLoanInput{
			Checked:     true,
			InputAmount: 1000,
			Details:     loanDetails(post2012, domain.Repayment15, domain.InterestFixed, domain.RepaymentInstallment), // cap 2000
		},
	}

	r := HousingAggregateLimits(special, domain.OtherDeductionInput{})

	assert.False(t, r.SecondStage.IsExceeded)
	assert.Equal(t, money.Manwon(1000), r.FinalAmounts.HousingLoan)
}

func TestHousingAggregateLimitsSavingsIneligible(t *testing.T) {
	other := domain.OtherDeductionInput{
		HousingSavings: domain.HousingSavingsInput{Checked: true, InputAmount: 500},
	}

	r := HousingAggregateLimits(domain.SpecialDeductionInput{}, other)

	assert.False(t, r.SavingsValid)
	assert.Equal(t, money.Manwon(0), r.FinalAmounts.HousingSavings)
}
