// Package output renders settlement results for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"yeonmal/internal/domain"
	"yeonmal/internal/money"
)

// ReportGenerator handles report generation in the supported formats.
type ReportGenerator struct {
	w io.Writer
}

// NewReportGenerator creates a report generator writing to w.
func NewReportGenerator(w io.Writer) *ReportGenerator {
	return &ReportGenerator{w: w}
}

// GenerateReport renders a settlement result in the given format.
func (rg *ReportGenerator) GenerateReport(result *domain.SettlementResult, format string) error {
	switch format {
	case "console":
		return rg.generateConsoleReport(result)
	case "json":
		return rg.generateJSONReport(result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func (rg *ReportGenerator) generateJSONReport(result *domain.SettlementResult) error {
	enc := json.NewEncoder(rg.w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func (rg *ReportGenerator) generateConsoleReport(r *domain.SettlementResult) error {
	var b strings.Builder

	line := strings.Repeat("=", 60)
	b.WriteString(line + "\n")
	b.WriteString("연말정산 계산 결과\n")
	b.WriteString(line + "\n\n")

	fmt.Fprintf(&b, "총급여:           %s\n", FormatWon(r.Salary))
	fmt.Fprintf(&b, "근로소득공제:     %s  (%s)\n", FormatWon(r.LaborIncomeDeduction.Amount), r.LaborIncomeDeduction.Formula)
	fmt.Fprintf(&b, "근로소득금액:     %s\n\n", FormatWon(r.TaxBase.LaborIncome))

	fmt.Fprintf(&b, "인적공제:         %s (기본공제 %d명)\n", FormatWon(r.Exemption.TotalDeduction), r.Exemption.BasicDeductionCount)
	for _, d := range r.Exemption.Details {
		fmt.Fprintf(&b, "  - %s: %s\n", d.Label, FormatWon(d.Amount))
		if d.Note != "" {
			fmt.Fprintf(&b, "    ※ %s\n", d.Note)
		}
	}

	fmt.Fprintf(&b, "연금보험료공제:   %s\n", FormatWon(r.Pension.TotalPension))
	for _, d := range r.Pension.Details {
		fmt.Fprintf(&b, "  - %s: %s", d.Scheme, FormatWon(d.Amount))
		if d.AutoCalculated {
			fmt.Fprintf(&b, "  (%s)", d.Formula)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "특별소득공제:     %s\n", FormatWon(r.SpecialDeduction))
	if r.Housing.FirstStage.IsExceeded {
		fmt.Fprintf(&b, "  ※ 주택 공제 1단계 한도 초과: %s만원 → %s만원\n",
			r.Housing.FirstStage.OriginalTotal.Format(), r.Housing.FirstStage.Total.Format())
	}
	if r.Housing.SecondStage.IsExceeded {
		fmt.Fprintf(&b, "  ※ 장기주택저당차입금 한도 조정: %s만원 한도, 공제액 %s만원\n",
			r.Housing.SecondStage.Limit.Format(), r.Housing.SecondStage.HousingLoan.Format())
	}
	if !r.Housing.SavingsValid {
		fmt.Fprintf(&b, "  ※ %s\n", r.Housing.SavingsMessage)
	}

	fmt.Fprintf(&b, "그 밖의 소득공제: %s\n", FormatWon(r.OtherDeduction))
	if r.Card.IsValid {
		fmt.Fprintf(&b, "  - 신용카드 등 사용액 공제: %s\n", FormatManwon(r.Card.Amount))
	} else if r.Card.Message != "" {
		fmt.Fprintf(&b, "  ※ %s\n", r.Card.Message)
	}
	if r.TaxBase.DeductionExcess > 0 {
		fmt.Fprintf(&b, "  ※ 소득공제 종합한도 초과분 %s 과세표준 합산\n", FormatWon(r.TaxBase.DeductionExcess))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "과세표준:         %s\n", FormatWon(r.TaxBase.TaxBase))
	fmt.Fprintf(&b, "산출세액:         %s  (%s)\n\n", FormatWon(r.TaxBase.CalculatedTax), r.TaxBase.TaxFormula)

	fmt.Fprintf(&b, "세액공제 합계:    %s\n", FormatWon(r.Final.TotalTaxDeduction))
	for _, c := range r.Final.Credits {
		fmt.Fprintf(&b, "  - %s: %s\n", c.Label, FormatWon(c.Amount))
	}

	b.WriteString("\n" + line + "\n")
	fmt.Fprintf(&b, "결정세액:         %s\n", FormatWon(r.Final.FinalTax))
	fmt.Fprintf(&b, "기납부세액:       %s\n", FormatWon(r.Final.TotalPaidTax))
	if r.Final.TaxDifference >= 0 {
		fmt.Fprintf(&b, "추가 납부세액:    %s\n", FormatWon(r.Final.TaxDifference))
	} else {
		fmt.Fprintf(&b, "환급 예상세액:    %s\n", FormatWon(-r.Final.TaxDifference))
	}
	b.WriteString(line + "\n")

	_, err := io.WriteString(rg.w, b.String())
	return err
}

// FormatWon formats a won amount with the currency suffix, e.g. "1,500,000원".
func FormatWon(amount money.Won) string {
	return amount.Format() + "원"
}

// FormatManwon formats a manwon amount, e.g. "300만원".
func FormatManwon(amount money.Manwon) string {
	return amount.Format() + "만원"
}
