package calculation

import (
	"fmt"

	"yeonmal/internal/domain"
	"yeonmal/internal/money"
)

// Personal exemption amounts, all in won.
const (
	basicExemptionPerHead = money.Won(1_500_000)
	seniorExemptionEach   = money.Won(1_000_000)
	disabledExemptionEach = money.Won(2_000_000)
	singleParentExemption = money.Won(1_000_000)
	femaleExemption       = money.Won(500_000)
)

// PersonalExemption counts qualifying dependents and sums the basic and
// additional exemption amounts.
func PersonalExemption(sel domain.ExemptionSelections) domain.ExemptionResult {
	var details []domain.DeductionDetail

	headCount := 0
	addHead := func(label string, n int) {
		if n <= 0 {
			return
		}
		headCount += n
		details = append(details, domain.DeductionDetail{
			Label:   label,
			Amount:  basicExemptionPerHead * money.Won(n),
			Formula: fmt.Sprintf("%d명 × %s원", n, basicExemptionPerHead.Format()),
		})
	}

	if sel.Self.Checked {
		addHead("본인", 1)
	}
	if sel.Spouse.Checked {
		addHead("배우자", 1)
	}
	if sel.Parents.Checked {
		addHead("부모", sel.Parents.Count)
	}
	if sel.Children.Checked {
		addHead("자녀", sel.Children.Count)
	}
	if sel.Siblings.Checked {
		addHead("형제자매", sel.Siblings.Count)
	}

	basic := basicExemptionPerHead * money.Won(headCount)

	var additional money.Won
	if sel.Senior.Checked && sel.Senior.Count > 0 {
		amount := seniorExemptionEach * money.Won(sel.Senior.Count)
		additional += amount
		details = append(details, domain.DeductionDetail{
			Label:   "경로우대",
			Amount:  amount,
			Formula: fmt.Sprintf("%d명 × %s원", sel.Senior.Count, seniorExemptionEach.Format()),
		})
	}
	if sel.Disabled.Checked && sel.Disabled.Count > 0 {
		amount := disabledExemptionEach * money.Won(sel.Disabled.Count)
		additional += amount
		details = append(details, domain.DeductionDetail{
			Label:   "장애인",
			Amount:  amount,
			Formula: fmt.Sprintf("%d명 × %s원", sel.Disabled.Count, disabledExemptionEach.Format()),
		})
	}

	// Statutory tie-break: when both are checked, only the single-parent
	// exemption applies and the female exemption is suppressed.
	if sel.SingleParent.Checked {
		additional += singleParentExemption
		detail := domain.DeductionDetail{
			Label:  "한부모",
			Amount: singleParentExemption,
		}
		if sel.Female.Checked {
			detail.Note = "한부모 공제와 부녀자 공제는 중복 적용되지 않아 한부모 공제만 적용됩니다"
		}
		details = append(details, detail)
	} else if sel.Female.Checked {
		additional += femaleExemption
		details = append(details, domain.DeductionDetail{
			Label:  "부녀자",
			Amount: femaleExemption,
		})
	}

	return domain.ExemptionResult{
		BasicDeduction:      basic,
		AdditionalDeduction: additional,
		TotalDeduction:      basic + additional,
		BasicDeductionCount: headCount,
		Details:             details,
	}
}
