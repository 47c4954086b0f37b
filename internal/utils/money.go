package utils

import (
	"fmt"
	"strconv"
)

// FormatMoney keeps consistent two-decimal formatting for billing fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatRand renders an amount with the ZAR currency prefix, e.g. "R40.00".
func FormatRand(amount float64) string {
	return "R" + FormatMoney(amount)
}

// FormatNumber renders a numeric value at source precision (no padding,
// no trailing zeros).
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
