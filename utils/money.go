package utils

import "math"

// Round2 rounds a rupee amount to two decimal places
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// ToMinorUnits converts a rupee amount to paise, which is what the payment
// gateway is charged in.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
