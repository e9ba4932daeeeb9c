package utils

import (
	"fmt"
	"strings"
)

// FormatPrice formats a price as US dollars with thousands separators,
// e.g. 1234.5 -> "$1,234.50"
func FormatPrice(price float64) string {
	negative := price < 0
	if negative {
		price = -price
	}

	s := fmt.Sprintf("%.2f", price)
	parts := strings.SplitN(s, ".", 2)
	whole, frac := parts[0], parts[1]

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if negative {
		return fmt.Sprintf("-$%s.%s", b.String(), frac)
	}
	return fmt.Sprintf("$%s.%s", b.String(), frac)
}

// TruncateText shortens text to maxLength characters, appending an ellipsis
// when anything was cut
func TruncateText(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	return text[:maxLength] + "..."
}
