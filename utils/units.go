package utils

import (
	"fmt"
	"math"
)

var magnitudePrefixes = [...]string{"", "K", "M", "G", "T", "P"}

func SiUnits(number float64, decimals int) string {
	if number >= 1000000000000 {
		return fmt.Sprintf("%.*f T", decimals, number/1000000000000)
	} else if number >= 1000000000 {
		return fmt.Sprintf("%.*f G", decimals, number/1000000000)
	} else if number >= 1000000 {
		return fmt.Sprintf("%.*f M", decimals, number/1000000)
	} else if number >= 1000 {
		return fmt.Sprintf("%.*f K", decimals, number/1000)
	}

	return fmt.Sprintf("%.*f", decimals, number)
}

// FormatValue renders value with a fixed number of decimals followed by a literal unit.
func FormatValue(value float64, decimals int, unit string) string {
	if decimals < 0 {
		decimals = 0
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	if unit == "" {
		return fmt.Sprintf("%.*f", decimals, value)
	}
	return fmt.Sprintf("%.*f %s", decimals, value, unit)
}

// FormatScaledValue divides value by 1000 while it is at least 1000, up to the P prefix,
// and renders it via FormatValue with the matching prefix before unit.
func FormatScaledValue(value float64, decimals int, unit string) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	i := 0
	for value >= 1000 && i < len(magnitudePrefixes)-1 {
		value /= 1000
		i++
	}
	return FormatValue(value, decimals, magnitudePrefixes[i]+unit)
}

func FormatHashrate(hashrate float64) string {
	return FormatScaledValue(hashrate, 2, "H/s")
}
