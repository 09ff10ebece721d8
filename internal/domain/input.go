// Package domain defines the input and result records exchanged between the
// settlement engine and its callers. Records are plain values: the engine
// never mutates an input and every result is built fresh per call.
package domain

import (
	"time"

	"yeonmal/internal/money"
)

// ExemptionCategory identifies a personal-exemption dependent category.
type ExemptionCategory string

const (
	ExemptionSelf         ExemptionCategory = "self"
	ExemptionSpouse       ExemptionCategory = "spouse"
	ExemptionParents      ExemptionCategory = "parents"
	ExemptionChildren     ExemptionCategory = "children"
	ExemptionSiblings     ExemptionCategory = "siblings"
	ExemptionSenior       ExemptionCategory = "senior"
	ExemptionDisabled     ExemptionCategory = "disabled"
	ExemptionSingleParent ExemptionCategory = "single-parent"
	ExemptionFemale       ExemptionCategory = "female"
)

// CountSelection is a single exemption category selection. Checkbox-style
// categories (self, spouse, single-parent, female) ignore Count and
// contribute 0 or 1; count-style categories contribute Count when checked.
type CountSelection struct {
	Checked bool `json:"checked" yaml:"checked"`
	Count   int  `json:"count" yaml:"count"`
}

// ExemptionSelections holds the full personal-exemption form state.
// Self defaults to checked with count 1 in every collaborator UI.
type ExemptionSelections struct {
	Self         CountSelection `json:"self" yaml:"self"`
	Spouse       CountSelection `json:"spouse" yaml:"spouse"`
	Parents      CountSelection `json:"parents" yaml:"parents"`
	Children     CountSelection `json:"children" yaml:"children"`
	Siblings     CountSelection `json:"siblings" yaml:"siblings"`
	Senior       CountSelection `json:"senior" yaml:"senior"`
	Disabled     CountSelection `json:"disabled" yaml:"disabled"`
	SingleParent CountSelection `json:"singleParent" yaml:"single_parent"`
	Female       CountSelection `json:"female" yaml:"female"`
}

// PensionScheme identifies a public pension scheme.
type PensionScheme string

const (
	PensionNational      PensionScheme = "national-pension"
	PensionPublic        PensionScheme = "public-pension"
	PensionMilitary      PensionScheme = "military-pension"
	PensionPrivateSchool PensionScheme = "private-school-pension"
	PensionPostOffice    PensionScheme = "post-office-pension"
)

// PensionEntry is one scheme's form state. Amount zero means the premium is
// auto-calculated from salary; a non-zero Amount is a manual override used
// verbatim.
type PensionEntry struct {
	Checked bool      `json:"checked" yaml:"checked"`
	Amount  money.Won `json:"amount" yaml:"amount"`
}

// PensionSelections maps scheme to form state. Exclusivity between schemes is
// a UI concern; the engine sums every checked scheme.
type PensionSelections map[PensionScheme]PensionEntry

// RepaymentPeriod is the housing-loan repayment period band.
type RepaymentPeriod string

const (
	RepaymentLess RepaymentPeriod = "less" // under 10 years
	Repayment10   RepaymentPeriod = "10"
	Repayment15   RepaymentPeriod = "15"
	Repayment30   RepaymentPeriod = "30"
)

// InterestType is the housing-loan interest arrangement.
type InterestType string

const (
	InterestFixed    InterestType = "fixed"
	InterestVariable InterestType = "variable"
)

// RepaymentType is the housing-loan repayment arrangement.
type RepaymentType string

const (
	RepaymentInstallment RepaymentType = "installment"
	RepaymentOther       RepaymentType = "other"
)

// LoanDetails determines the individual cap for the housing-purchase loan
// deduction via the contract-date-era lookup table.
type LoanDetails struct {
	ContractDate    time.Time       `json:"contractDate" yaml:"contract_date"`
	RepaymentPeriod RepaymentPeriod `json:"repaymentPeriod" yaml:"repayment_period"`
	InterestType    InterestType    `json:"interestType" yaml:"interest_type"`
	RepaymentType   RepaymentType   `json:"repaymentType" yaml:"repayment_type"`
}

// CheckedAmount is a checkbox plus a manwon amount.
type CheckedAmount struct {
	Checked bool         `json:"checked" yaml:"checked"`
	Amount  money.Manwon `json:"amount" yaml:"amount"`
}

// HousingLoanInput is the housing-purchase loan form state. InputAmount is the
// annual repayment of principal and interest in manwon.
type HousingLoanInput struct {
	Checked     bool         `json:"checked" yaml:"checked"`
	InputAmount money.Manwon `json:"inputAmount" yaml:"input_amount"`
	Details     LoanDetails  `json:"details" yaml:"details"`
}

// SpecialDeductionInput groups the special-deduction form sections. All
// housing amounts are in manwon; insurance as well, converted to won when the
// special-deduction total is aggregated.
type SpecialDeductionInput struct {
	Insurance   CheckedAmount    `json:"insurance" yaml:"insurance"`
	HousingRent CheckedAmount    `json:"housingRent" yaml:"housing_rent"`
	HousingLoan HousingLoanInput `json:"housingLoan" yaml:"housing_loan"`
}

// HousingSavingsInput is the housing-subscription savings form state.
type HousingSavingsInput struct {
	Checked         bool         `json:"checked" yaml:"checked"`
	InputAmount     money.Manwon `json:"inputAmount" yaml:"input_amount"`
	IsHouseholdHead bool         `json:"isHouseholdHead" yaml:"is_household_head"`
}

// CardUsage holds the six annual card/receipt usage figures in manwon.
// LastYear is the prior year's total usage, used for the increase bonus.
type CardUsage struct {
	Credit      money.Manwon `json:"credit" yaml:"credit"`
	Check       money.Manwon `json:"check" yaml:"check"`
	Traditional money.Manwon `json:"traditional" yaml:"traditional"`
	Transport   money.Manwon `json:"transport" yaml:"transport"`
	Culture     money.Manwon `json:"culture" yaml:"culture"`
	LastYear    money.Manwon `json:"lastYear" yaml:"last_year"`
}

// Total is this year's combined usage across all five categories.
func (u CardUsage) Total() money.Manwon {
	return u.Credit + u.Check + u.Traditional + u.Transport + u.Culture
}

// CreditCardInput is the card-deduction form state.
type CreditCardInput struct {
	Checked bool      `json:"checked" yaml:"checked"`
	Usage   CardUsage `json:"usage" yaml:"usage"`
}

// OtherDeductionInput groups the other-deduction form sections.
type OtherDeductionInput struct {
	HousingSavings HousingSavingsInput `json:"housingSavings" yaml:"housing_savings"`
	CreditCard     CreditCardInput     `json:"creditCard" yaml:"credit_card"`
}

// TaxCreditInput holds the tax-credit form figures. Monetary figures are in
// won; ChildCount and RentMonths are plain counts.
type TaxCreditInput struct {
	ChildCount        int       `json:"childCount" yaml:"child_count"`
	PensionAccount    money.Won `json:"pensionAccount" yaml:"pension_account"`
	MonthlyRent       money.Won `json:"monthlyRent" yaml:"monthly_rent"`
	RentMonths        int       `json:"rentMonths" yaml:"rent_months"`
	ISAAmount         money.Won `json:"isaAmount" yaml:"isa_amount"`
	MedicalExpenses   money.Won `json:"medicalExpenses" yaml:"medical_expenses"`
	EducationExpenses money.Won `json:"educationExpenses" yaml:"education_expenses"`
	DonationAmount    money.Won `json:"donationAmount" yaml:"donation_amount"`
}

// SettlementInput is the complete engine input: one snapshot of the form
// state. All won/manwon fields carry their unit in the type.
type SettlementInput struct {
	Salary     money.Won             `json:"salary" yaml:"salary"`
	Exemptions ExemptionSelections   `json:"exemptions" yaml:"exemptions"`
	Pensions   PensionSelections     `json:"pensions" yaml:"pensions"`
	Special    SpecialDeductionInput `json:"special" yaml:"special"`
	Other      OtherDeductionInput   `json:"other" yaml:"other"`
	Credits    TaxCreditInput        `json:"credits" yaml:"credits"`

	TaxReduction   money.Won `json:"taxReduction" yaml:"tax_reduction"`
	CurrentPaidTax money.Won `json:"currentPaidTax" yaml:"current_paid_tax"`
	PreviousTax    money.Won `json:"previousTax" yaml:"previous_tax"`
}

// DefaultSettlementInput returns the form's initial state: self checked with
// count 1, everything else empty.
func DefaultSettlementInput() SettlementInput {
	return SettlementInput{
		Exemptions: ExemptionSelections{
			Self: CountSelection{Checked: true, Count: 1},
		},
		Pensions: PensionSelections{},
	}
}
