package textutil

import "strings"

// NormalizePhone reduces a free-typed US phone number to its bare digits,
// dropping a leading "1" country code when the remainder is a full ten-digit
// number. Input with no digits normalizes to the empty string.
func NormalizePhone(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	return digits
}

// FormatPhone renders a normalized ten-digit number as (AAA) BBB-CCCC.
// Anything else is returned unchanged.
func FormatPhone(digits string) string {
	if len(digits) != 10 {
		return digits
	}
	return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
}
