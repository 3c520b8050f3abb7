package routing

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// dec переводит float64 в decimal; NaN и Inf становятся нулём
func dec(x float64) decimal.Decimal {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(x)
}

// money округляет до центов
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// Money округляет float64 до двух знаков
func Money(x float64) float64 {
	return money(dec(x))
}

// percentOf возвращает amount * pct / 100
func percentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred)
}

// effectivePercent возвращает fee / amount * 100, для amount <= 0 ноль
func effectivePercent(fee, amount decimal.Decimal) decimal.Decimal {
	if !amount.IsPositive() {
		return decimal.Zero
	}
	return fee.Div(amount).Mul(hundred)
}

func clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}
