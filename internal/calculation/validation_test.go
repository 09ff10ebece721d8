package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yeonmal/internal/domain"
)

func TestValidatePension(t *testing.T) {
	assert.Empty(t, ValidatePension(domain.PensionSelections{
		domain.PensionNational: {Checked: true, Amount: 2_000_000},
	}))

	issues := ValidatePension(domain.PensionSelections{
		domain.PensionNational: {Checked: true, Amount: 12_000_000},
	})
	assert.Len(t, issues, 1)
	assert.Equal(t, string(domain.PensionNational), issues[0].Field)
}

func TestValidatePensionExclusivity(t *testing.T) {
	issues := ValidatePension(domain.PensionSelections{
		domain.PensionNational: {Checked: true},
		domain.PensionPublic:   {Checked: true},
	})
	assert.Len(t, issues, 1)
	assert.Equal(t, "pensions", issues[0].Field)
}

func TestValidateOtherDeduction(t *testing.T) {
	assert.Empty(t, ValidateOtherDeduction(domain.OtherDeductionInput{
		HousingSavings: domain.HousingSavingsInput{Checked: true, InputAmount: 500},
	}))

	issues := ValidateOtherDeduction(domain.OtherDeductionInput{
		HousingSavings: domain.HousingSavingsInput{Checked: true, InputAmount: 1500},
		CreditCard: domain.CreditCardInput{
			Checked: true,
			Usage:   domain.CardUsage{Credit: -100},
		},
	})
	assert.Len(t, issues, 2)
}

func TestValidateInputNegativeSalary(t *testing.T) {
	in := domain.DefaultSettlementInput()
	in.Salary = -1
	issues := ValidateInput(in)
	assert.Len(t, issues, 1)
	assert.Equal(t, "salary", issues[0].Field)
}
