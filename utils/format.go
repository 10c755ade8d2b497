package utils

import (
	"fmt"
	"time"
)

// FormatMoney renders an amount in soles with two decimals, e.g. "S/ 36.00".
func FormatMoney(value float64) string {
	return fmt.Sprintf("S/ %.2f", value)
}

// TodayISO returns the current calendar date as YYYY-MM-DD, for the date
// pickers' lower bound.
func TodayISO() string {
	return time.Now().Format("2006-01-02")
}
