package codec

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/reign-ny/membership-approval/internal/domain"
)

const segmentSeparator = "_"

// ParseMemberParam decodes an already URL-decoded token of the form
// First_Last_<Number>. Every segment between the first and the last one
// belongs to the surname. The number is either a base-10 integer or a Roman
// numeral.
//
// On failure it returns the sentinel record together with domain.ErrFormat or
// domain.ErrInvalidNumeral.
func ParseMemberParam(raw string) (domain.MemberRecord, error) {
	parts := strings.Split(strings.TrimSpace(raw), segmentSeparator)
	if len(parts) < 3 {
		return domain.UnknownMember(), fmt.Errorf("%w: expected at least 3 segments, got %d", domain.ErrFormat, len(parts))
	}

	first := strings.TrimSpace(parts[0])
	surname := make([]string, 0, len(parts)-2)
	for _, p := range parts[1 : len(parts)-1] {
		if p = strings.TrimSpace(p); p != "" {
			surname = append(surname, p)
		}
	}
	if first == "" || len(surname) == 0 {
		return domain.UnknownMember(), fmt.Errorf("%w: empty name segment", domain.ErrFormat)
	}

	number, err := parseMembershipNumber(parts[len(parts)-1])
	if err != nil {
		return domain.UnknownMember(), err
	}

	return domain.MemberRecord{
		Name:             FormatName(first, strings.Join(surname, " ")),
		MembershipNumber: number,
		Known:            true,
	}, nil
}

// DecodeMemberParam is ParseMemberParam with every failure folded into the
// sentinel record. It never returns an error.
func DecodeMemberParam(raw string) domain.MemberRecord {
	record, err := ParseMemberParam(raw)
	if err != nil {
		return domain.UnknownMember()
	}
	return record
}

// EncodeMemberParam builds the token decoded by ParseMemberParam.
// Surname words are joined with underscores and the number is written in
// Roman numerals, so number must be in [1, 3999].
func EncodeMemberParam(firstName, lastName string, number int) (string, error) {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" || strings.Contains(firstName, segmentSeparator) {
		return "", fmt.Errorf("%w: first name %q", domain.ErrFormat, firstName)
	}

	surname := strings.Fields(strings.ReplaceAll(lastName, segmentSeparator, " "))
	if len(surname) == 0 {
		return "", fmt.Errorf("%w: empty last name", domain.ErrFormat)
	}

	roman, err := ArabicToRoman(number)
	if err != nil {
		return "", err
	}

	caser := cases.Title(language.Und)
	segments := make([]string, 0, len(surname)+2)
	segments = append(segments, caser.String(firstName))
	for _, word := range surname {
		segments = append(segments, caser.String(word))
	}
	segments = append(segments, roman)

	return strings.Join(segments, segmentSeparator), nil
}

// FormatName joins the normalized first and last names with a space.
func FormatName(firstName, lastName string) string {
	return NormalizeName(firstName) + " " + NormalizeName(lastName)
}

// NormalizeName capitalizes the first letter of every word and lowercases the rest.
func NormalizeName(s string) string {
	// Caser keeps state between calls, so it is not shared.
	return cases.Title(language.Und).String(s)
}

// DisplayNumber renders the membership number shown on the card: Roman
// numerals when possible, the decimal form for a known number outside
// 1..3999, and "N/A" for the sentinel record.
func DisplayNumber(record domain.MemberRecord) string {
	if !record.Known {
		return domain.NotAvailable
	}
	roman, err := ArabicToRoman(record.MembershipNumber)
	if err != nil {
		return strconv.Itoa(record.MembershipNumber)
	}
	return roman
}

func parseMembershipNumber(segment string) (int, error) {
	segment = strings.TrimSpace(segment)
	if n, err := strconv.Atoi(segment); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("%w: negative number %d", domain.ErrInvalidNumeral, n)
		}
		return n, nil
	}
	return RomanToArabic(segment)
}
