package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yeonmal/internal/domain"
	"yeonmal/internal/money"
)

func TestLoadFromFile(t *testing.T) {
	in, err := NewInputParser().LoadFromFile("testdata/settlement.yaml")
	require.NoError(t, err)

	assert.Equal(t, money.Won(50_000_000), in.Salary)
	assert.True(t, in.Exemptions.Self.Checked)
	assert.Equal(t, 2, in.Exemptions.Children.Count)
	assert.True(t, in.Pensions[domain.PensionNational].Checked)
	assert.True(t, in.Special.HousingLoan.Checked)
	assert.Equal(t, domain.Repayment15, in.Special.HousingLoan.Details.RepaymentPeriod)
	assert.Equal(t, money.Manwon(2000), in.Other.CreditCard.Usage.Credit)
	assert.Equal(t, money.Won(3_000_000), in.CurrentPaidTax)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.SettlementInput)
		wantErr string
	}{
		{
			name:    "negative salary",
			mutate:  func(in *domain.SettlementInput) { in.Salary = -1 },
			wantErr: "salary",
		},
		{
			name: "negative exemption count",
			mutate: func(in *domain.SettlementInput) {
				in.Exemptions.Children = domain.CountSelection{Checked: true, Count: -1}
			},
			wantErr: "children",
		},
		{
			name: "unknown pension scheme",
			mutate: func(in *domain.SettlementInput) {
				in.Pensions["retirement-pension"] = domain.PensionEntry{Checked: true}
			},
			wantErr: "pension scheme",
		},
		{
			name: "loan without contract date",
			mutate: func(in *domain.SettlementInput) {
				in.Special.HousingLoan = domain.HousingLoanInput{
					Checked: true,
					Details: domain.LoanDetails{
						RepaymentPeriod: domain.Repayment15,
						InterestType:    domain.InterestFixed,
						RepaymentType:   domain.RepaymentInstallment,
					},
				}
			},
			wantErr: "contract date",
		},
		{
			name: "unknown repayment period",
			mutate: func(in *domain.SettlementInput) {
				in.Special.HousingLoan.Checked = true
				in.Special.HousingLoan.Details.RepaymentPeriod = "20"
			},
			wantErr: "repayment period",
		},
		{
			name: "negative card usage",
			mutate: func(in *domain.SettlementInput) {
				in.Other.CreditCard.Usage.Check = -5
			},
			wantErr: "card usage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := domain.DefaultSettlementInput()
			tt.mutate(&in)
			err := NewInputParser().ValidateInput(&in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateInputAcceptsDefaults(t *testing.T) {
	in := domain.DefaultSettlementInput()
	assert.NoError(t, NewInputParser().ValidateInput(&in))
}
