package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUnitConversionRoundTrip(t *testing.T) {
	for _, n := range []Manwon{0, 1, 350, 5000, 123456} {
		assert.Equal(t, n, n.Won().Manwon(), "round trip for %d manwon", n)
	}
}

func TestManwonTruncates(t *testing.T) {
	assert.Equal(t, Manwon(1), Won(19_999).Manwon())
	assert.Equal(t, Manwon(2), Won(20_000).Manwon())
}

func TestMulRateRoundsHalfUp(t *testing.T) {
	tests := []struct {
		name     string
		amount   Won
		rate     decimal.Decimal
		expected Won
	}{
		{"exact", Won(1_000_000), decimal.NewFromFloat(0.15), Won(150_000)},
		{"rounds up at half", Won(10), decimal.NewFromFloat(0.45), Won(5)},
		{"rounds down below half", Won(10), decimal.NewFromFloat(0.44), Won(4)},
		{"zero amount", Won(0), decimal.NewFromFloat(0.45), Won(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.amount.MulRate(tt.rate))
		})
	}
}

func TestFloorZero(t *testing.T) {
	assert.Equal(t, Won(0), FloorZero(Won(-42)))
	assert.Equal(t, Won(42), FloorZero(Won(42)))
	assert.Equal(t, Manwon(0), FloorZeroManwon(Manwon(-1)))
}
