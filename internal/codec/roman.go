package codec

import (
	"fmt"
	"strings"

	"github.com/reign-ny/membership-approval/internal/domain"
)

var romanValues = map[byte]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

// romanTable is ordered descending for greedy conversion.
var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// RomanToArabic converts a Roman numeral to an integer.
// The scan runs right to left: a symbol smaller than the one after it is
// subtracted, otherwise added. Input is case-insensitive. Non-canonical forms
// such as "IIII" are accepted and summed.
func RomanToArabic(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty numeral", domain.ErrInvalidNumeral)
	}

	result := 0
	prev := 0
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		value, ok := romanValues[c]
		if !ok {
			return 0, fmt.Errorf("%w: unexpected character %q in %q", domain.ErrInvalidNumeral, s[i], s)
		}

		if value < prev {
			result -= value
		} else {
			result += value
		}
		prev = value
	}

	return result, nil
}

// ArabicToRoman converts n in [1, 3999] to its canonical Roman form.
// Anything outside that range returns domain.ErrOutOfRange and an empty string.
func ArabicToRoman(n int) (string, error) {
	if n < 1 || n > domain.MaxMembershipNumber {
		return "", fmt.Errorf("%w: %d", domain.ErrOutOfRange, n)
	}

	var b strings.Builder
	for _, entry := range romanTable {
		for n >= entry.value {
			b.WriteString(entry.symbol)
			n -= entry.value
		}
	}
	return b.String(), nil
}
