package services

import "strconv"

// FormatPHP formats an integer peso amount with the peso sign and thousands
// separators (e.g. ₱51,818).
func FormatPHP(amount int) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	grouped := applyThousandsGrouping(digits)

	result := "₱" + grouped
	if negative {
		result = "-" + result
	}
	return result
}

// applyThousandsGrouping inserts commas every 3 digits from the right.
func applyThousandsGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}
