package utils

import (
	"github.com/shopspring/decimal"
	"math"
)

func toDecimal(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// FormatAmount renders a coin amount rounded half away from zero, with an optional symbol.
func FormatAmount(amount float64, decimals int, symbol string) string {
	if decimals < 0 {
		decimals = 0
	}
	s := toDecimal(amount).StringFixed(int32(decimals))
	if symbol == "" {
		return s
	}
	return s + " " + symbol
}

// SumAmounts adds coin amounts without accumulating binary float error.
func SumAmounts[S ~[]E, E any](s S, amount func(E) float64) float64 {
	total := decimal.Zero
	for i := range s {
		total = total.Add(toDecimal(amount(s[i])))
	}
	return total.InexactFloat64()
}
