// Package calculation implements the year-end settlement rules engine: pure
// functions from input records to result records, no shared state, no I/O.
package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"yeonmal/internal/money"
)

// OpenUpper marks the top bracket's unbounded upper limit.
const OpenUpper = money.Won(-1)

// Bracket is one tier of a progressive table. Base is the accumulated amount
// at the previous bracket's upper bound, so the tier value for an amount
// inside the bracket is Base + (amount - previous upper) * Rate.
type Bracket struct {
	Upper money.Won
	Base  money.Won
	Rate  decimal.Decimal
}

// BracketResult is the evaluated amount plus a display formula.
type BracketResult struct {
	Amount  money.Won
	Formula string
}

// EvaluateBrackets evaluates a progressive table at amount. Brackets must be
// sorted ascending with the last bracket's Upper set to OpenUpper. A zero
// amount yields zero; negative amounts must be floored by the caller.
func EvaluateBrackets(amount money.Won, brackets []Bracket) BracketResult {
	var prev money.Won
	for _, b := range brackets {
		if b.Upper == OpenUpper || amount <= b.Upper {
			marginal := (amount - prev).MulRate(b.Rate)
			result := b.Base + marginal
			return BracketResult{
				Amount:  result,
				Formula: bracketFormula(amount, prev, b),
			}
		}
		prev = b.Upper
	}
	// Unreachable with a well-formed table; treat as the identity.
	return BracketResult{Amount: 0, Formula: "0원"}
}

func bracketFormula(amount, prev money.Won, b Bracket) string {
	pct := b.Rate.Mul(decimal.NewFromInt(100)).String()
	if prev == 0 && b.Base == 0 {
		return fmt.Sprintf("%s원 × %s%%", amount.Format(), pct)
	}
	return fmt.Sprintf("%s원 + (%s원 - %s원) × %s%%",
		b.Base.Format(), amount.Format(), prev.Format(), pct)
}
