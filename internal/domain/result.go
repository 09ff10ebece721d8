package domain

import (
	"github.com/shopspring/decimal"

	"yeonmal/internal/money"
)

// DeductionDetail is one line of a deduction breakdown for display.
type DeductionDetail struct {
	Label   string    `json:"label"`
	Amount  money.Won `json:"amount"`
	Formula string    `json:"formula,omitempty"`
	Note    string    `json:"note,omitempty"`
}

// LaborIncomeDeductionResult is the statutory work-expense allowance.
type LaborIncomeDeductionResult struct {
	Amount  money.Won `json:"amount"`
	Formula string    `json:"formula"`
}

// ExemptionResult is the personal-exemption breakdown, all amounts in won.
type ExemptionResult struct {
	BasicDeduction      money.Won         `json:"basicDeduction"`
	AdditionalDeduction money.Won         `json:"additionalDeduction"`
	TotalDeduction      money.Won         `json:"totalDeduction"`
	BasicDeductionCount int               `json:"basicDeductionCount"`
	Details             []DeductionDetail `json:"deductionDetails"`
}

// PensionDetail is one checked scheme's contribution.
type PensionDetail struct {
	Scheme         PensionScheme `json:"scheme"`
	Amount         money.Won     `json:"amount"`
	AutoCalculated bool          `json:"autoCalculated"`
	Formula        string        `json:"formula,omitempty"`
}

// PensionResult is the pension-premium deduction total.
type PensionResult struct {
	TotalPension money.Won       `json:"totalPension"`
	Details      []PensionDetail `json:"details"`
}

// HousingFirstStage reports the savings+rent aggregate cap application.
type HousingFirstStage struct {
	OriginalTotal money.Manwon `json:"originalTotal"`
	Total         money.Manwon `json:"total"`
	IsExceeded    bool         `json:"isExceeded"`
}

// HousingSecondStage reports the loan-cap absorption stage.
type HousingSecondStage struct {
	OriginalAmount money.Manwon `json:"originalAmount"`
	Limit          money.Manwon `json:"limit"`
	HousingLoan    money.Manwon `json:"housingLoan"`
	IsExceeded     bool         `json:"isExceeded"`
}

// HousingFinalAmounts carries the per-component amounts after both stages.
type HousingFinalAmounts struct {
	HousingSavings money.Manwon `json:"housingSavings"`
	HousingRent    money.Manwon `json:"housingRent"`
	HousingLoan    money.Manwon `json:"housingLoan"`
}

// HousingLimitResult exposes original and adjusted amounts per component so
// callers can render "adjusted from X" messaging.
type HousingLimitResult struct {
	FirstStage   HousingFirstStage   `json:"firstStage"`
	SecondStage  HousingSecondStage  `json:"secondStage"`
	FinalAmounts HousingFinalAmounts `json:"finalAmounts"`

	SavingsValid   bool   `json:"savingsValid"`
	SavingsMessage string `json:"savingsMessage,omitempty"`
}

// CardDeductionDetails exposes every intermediate figure of the card
// calculation for audit and display. Fractional figures stay decimal; the
// rounded result lives on CardDeductionResult.
type CardDeductionDetails struct {
	TotalUsage       money.Manwon    `json:"totalUsage"`
	MinimumUsage     decimal.Decimal `json:"minimumUsage"`
	Credit           decimal.Decimal `json:"credit"`
	Check            decimal.Decimal `json:"check"`
	Traditional      decimal.Decimal `json:"traditional"`
	Transport        decimal.Decimal `json:"transport"`
	Culture          decimal.Decimal `json:"culture"`
	MinimumDeduction decimal.Decimal `json:"minimumDeduction"`
	IncreaseBonus    decimal.Decimal `json:"increaseBonus"`
	BaseDeduction    decimal.Decimal `json:"baseDeduction"`
	Cap              money.Manwon    `json:"cap"`
	IsExceeded       bool            `json:"isExceeded"`
	SpecialExcess    decimal.Decimal `json:"specialExcess"`
	AdditionalExcess decimal.Decimal `json:"additionalExcess"`
}

// CardDeductionResult is the credit-card usage deduction in manwon.
type CardDeductionResult struct {
	Amount  money.Manwon         `json:"amount"`
	IsValid bool                 `json:"isValid"`
	Message string               `json:"message,omitempty"`
	Details CardDeductionDetails `json:"details"`
}

// TaxBaseResult is the taxable base and computed tax before credits.
type TaxBaseResult struct {
	LaborIncome     money.Won `json:"laborIncome"`
	TaxBase         money.Won `json:"taxBase"`
	CalculatedTax   money.Won `json:"calculatedTax"`
	TaxFormula      string    `json:"taxFormula"`
	DeductionExcess money.Won `json:"deductionExcess"`
}

// LaborTaxCreditResult is the labor-income tax credit.
type LaborTaxCreditResult struct {
	Deduction money.Won `json:"deduction"`
	Formula   string    `json:"formula"`
}

// FinalTaxResult is the settled liability. TaxDifference is signed: positive
// means additional payment due, negative a refund.
type FinalTaxResult struct {
	CalculatedTax     money.Won `json:"calculatedTax"`
	TaxReduction      money.Won `json:"taxReduction"`
	TotalTaxDeduction money.Won `json:"totalTaxDeduction"`
	FinalTax          money.Won `json:"finalTax"`
	TotalPaidTax      money.Won `json:"totalPaidTax"`
	TaxDifference     money.Won `json:"taxDifference"`

	Credits []DeductionDetail `json:"credits"`
}

// SettlementResult is the full pipeline output for one input snapshot.
type SettlementResult struct {
	Salary               money.Won                  `json:"salary"`
	LaborIncomeDeduction LaborIncomeDeductionResult `json:"laborIncomeDeduction"`
	Exemption            ExemptionResult            `json:"exemption"`
	Pension              PensionResult              `json:"pension"`
	Housing              HousingLimitResult         `json:"housing"`
	Card                 CardDeductionResult        `json:"card"`
	SpecialDeduction     money.Won                  `json:"specialDeduction"`
	OtherDeduction       money.Won                  `json:"otherDeduction"`
	TaxBase              TaxBaseResult              `json:"taxBase"`
	Final                FinalTaxResult             `json:"final"`
}

// ValidationIssue is one advisory finding from the validation pass. Issues
// never stop a calculation: the engine computes against whatever it is given.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
