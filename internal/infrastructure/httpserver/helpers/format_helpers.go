// Package helpers holds presentation utilities for the admin gateway:
// display formatting and request parameter parsing.
package helpers

import (
	"fmt"
	"time"
)

// DefaultCurrency is the currency symbol prefixed to formatted prices.
const DefaultCurrency = "₺"

// FormatDate renders a timestamp as a long date, e.g. "March 1, 2024".
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// FormatDateShort renders a timestamp as a short date, e.g. "Mar 1, 2024".
func FormatDateShort(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatDateTime renders a long date with minutes, e.g. "March 1, 2024 15:04".
func FormatDateTime(t time.Time) string {
	return t.Format("January 2, 2006 15:04")
}

// FormatPrice renders a price with the default currency and two decimals.
func FormatPrice(price float64) string {
	return FormatPriceWith(price, DefaultCurrency, 2)
}

// FormatPriceWith renders a price with an explicit currency prefix and
// decimal count.
func FormatPriceWith(price float64, currency string, decimals int) string {
	return fmt.Sprintf("%s%.*f", currency, decimals, price)
}
