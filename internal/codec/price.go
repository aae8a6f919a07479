package codec

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatPrice groups thousands of prices at or above 1000 ("1000" -> "1,000",
// "2500.50" -> "2,500.50"). Smaller values and anything that does not parse
// as a decimal are returned unchanged.
//
// Grouped output is normalised: a leading "+" and leading zeros of the
// integer part are dropped ("+01000" -> "1,000"). The fraction is kept verbatim.
func FormatPrice(value string) string {
	intPart, frac, hasFrac := strings.Cut(value, ".")
	if !isDigits(frac) {
		return value
	}

	digits := strings.TrimLeft(strings.TrimPrefix(intPart, "+"), "0")
	if digits == "" || !isDigits(digits) || len(digits) < 4 {
		return value
	}

	var out string
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		out = message.NewPrinter(language.English).Sprintf("%d", n)
	} else {
		out = groupThousands(digits)
	}

	if hasFrac {
		out += "." + frac
	}
	return out
}

// ValidPrice reports whether value is a plain non-negative decimal such as
// "1000" or "1250.50".
func ValidPrice(value string) bool {
	intPart, frac, hasFrac := strings.Cut(value, ".")
	if intPart == "" || !isDigits(intPart) || !isDigits(frac) {
		return false
	}
	return !hasFrac || frac != ""
}

// groupThousands handles integer parts too long for int64.
func groupThousands(digits string) string {
	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
