// Package config loads settlement input snapshots from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"yeonmal/internal/domain"
	"yeonmal/internal/money"
)

// InputParser handles parsing of settlement input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a settlement input from a YAML file. Fields not present
// in the file keep the form defaults (self exemption checked).
func (ip *InputParser) LoadFromFile(filename string) (*domain.SettlementInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	input := domain.DefaultSettlementInput()
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &input, nil
}

// ValidateInput rejects structurally invalid input: negative figures and
// unknown enum values. Sanity-level findings (suspicious amounts) are the
// calculation package's advisory pass, not errors here.
func (ip *InputParser) ValidateInput(in *domain.SettlementInput) error {
	if in.Salary < 0 {
		return fmt.Errorf("salary must not be negative, got %d", in.Salary)
	}

	for _, c := range []struct {
		name string
		sel  domain.CountSelection
	}{
		{"parents", in.Exemptions.Parents},
		{"children", in.Exemptions.Children},
		{"siblings", in.Exemptions.Siblings},
		{"senior", in.Exemptions.Senior},
		{"disabled", in.Exemptions.Disabled},
	} {
		if c.sel.Count < 0 {
			return fmt.Errorf("exemption count for %s must not be negative, got %d", c.name, c.sel.Count)
		}
	}

	for scheme, entry := range in.Pensions {
		switch scheme {
		case domain.PensionNational, domain.PensionPublic, domain.PensionMilitary,
			domain.PensionPrivateSchool, domain.PensionPostOffice:
		default:
			return fmt.Errorf("unknown pension scheme %q", scheme)
		}
		if entry.Amount < 0 {
			return fmt.Errorf("pension amount for %s must not be negative", scheme)
		}
	}

	if in.Special.HousingLoan.Checked {
		if err := validateLoanDetails(in.Special.HousingLoan.Details); err != nil {
			return fmt.Errorf("housing loan details invalid: %w", err)
		}
	}

	usage := in.Other.CreditCard.Usage
	for _, amount := range []money.Manwon{
		usage.Credit, usage.Check, usage.Traditional,
		usage.Transport, usage.Culture, usage.LastYear,
	} {
		if amount < 0 {
			return fmt.Errorf("card usage figures must not be negative")
		}
	}

	if in.Credits.ChildCount < 0 || in.Credits.RentMonths < 0 {
		return fmt.Errorf("credit counts must not be negative")
	}

	return nil
}

func validateLoanDetails(d domain.LoanDetails) error {
	switch d.RepaymentPeriod {
	case domain.RepaymentLess, domain.Repayment10, domain.Repayment15, domain.Repayment30:
	default:
		return fmt.Errorf("unknown repayment period %q", d.RepaymentPeriod)
	}
	switch d.InterestType {
	case domain.InterestFixed, domain.InterestVariable:
	default:
		return fmt.Errorf("unknown interest type %q", d.InterestType)
	}
	switch d.RepaymentType {
	case domain.RepaymentInstallment, domain.RepaymentOther:
	default:
		return fmt.Errorf("unknown repayment type %q", d.RepaymentType)
	}
	if d.ContractDate.IsZero() {
		return fmt.Errorf("contract date is required")
	}
	return nil
}
