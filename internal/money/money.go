// Package money defines the two monetary units used throughout the
// settlement engine: whole won and manwon (ten-thousand won). They are
// distinct types so that cross-unit arithmetic is rejected by the compiler
// and every conversion is an explicit call site.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ManwonFactor is the conversion factor between the two units.
const ManwonFactor = 10_000

// Won is an amount in whole Korean won.
type Won int64

// Manwon is an amount in ten-thousand-won units.
type Manwon int64

// Won converts to whole won.
func (m Manwon) Won() Won {
	return Won(m) * ManwonFactor
}

// Manwon converts to ten-thousand-won units, truncating toward zero.
// Amounts that cross this boundary are expected to be exact multiples.
func (w Won) Manwon() Manwon {
	return Manwon(w / ManwonFactor)
}

// MulRate multiplies by a fractional rate, rounding half-up to a whole won.
func (w Won) MulRate(rate decimal.Decimal) Won {
	return Won(decimal.NewFromInt(int64(w)).Mul(rate).Round(0).IntPart())
}

// MulRate multiplies by a fractional rate, rounding half-up to a whole manwon.
func (m Manwon) MulRate(rate decimal.Decimal) Manwon {
	return Manwon(decimal.NewFromInt(int64(m)).Mul(rate).Round(0).IntPart())
}

// Decimal returns the amount as a decimal for intermediate arithmetic.
func (w Won) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(w))
}

// Decimal returns the amount as a decimal for intermediate arithmetic.
func (m Manwon) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(m))
}

// WonFromDecimal rounds a decimal won amount half-up to a whole won.
func WonFromDecimal(d decimal.Decimal) Won {
	return Won(d.Round(0).IntPart())
}

// ManwonFromDecimal rounds a decimal manwon amount half-up to a whole manwon.
func ManwonFromDecimal(d decimal.Decimal) Manwon {
	return Manwon(d.Round(0).IntPart())
}

// Format renders the amount with comma-grouped digits, e.g. "1,500,000".
func (w Won) Format() string {
	return groupDigits(int64(w))
}

// Format renders the amount with comma-grouped digits.
func (m Manwon) Format() string {
	return groupDigits(int64(m))
}

func groupDigits(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// FloorZero clamps a negative amount to zero. Calculators use this before
// returning anything that could have gone negative through subtraction.
func FloorZero(w Won) Won {
	if w < 0 {
		return 0
	}
	return w
}

// FloorZeroManwon clamps a negative manwon amount to zero.
func FloorZeroManwon(m Manwon) Manwon {
	if m < 0 {
		return 0
	}
	return m
}

// MinWon returns the smaller of two won amounts.
func MinWon(a, b Won) Won {
	if a < b {
		return a
	}
	return b
}

// MinManwon returns the smaller of two manwon amounts.
func MinManwon(a, b Manwon) Manwon {
	if a < b {
		return a
	}
	return b
}
