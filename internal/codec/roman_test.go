package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reign-ny/membership-approval/internal/domain"
)

func TestRomanToArabic(t *testing.T) {
	tests := []struct {
		numeral string
		want    int
	}{
		{"I", 1},
		{"IV", 4},
		{"IX", 9},
		{"XIV", 14},
		{"xiv", 14},
		{"XlIi", 42},
		{"XC", 90},
		{"MCMXCIV", 1994},
		{"MMMCMXCIX", 3999},
		{"IIII", 4},
	}

	for _, tt := range tests {
		t.Run(tt.numeral, func(t *testing.T) {
			got, err := RomanToArabic(tt.numeral)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRomanToArabic_CaseInsensitive(t *testing.T) {
	lower, err := RomanToArabic("xiv")
	require.NoError(t, err)
	upper, err := RomanToArabic("XIV")
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
	assert.Equal(t, 14, lower)
}

func TestRomanToArabic_Invalid(t *testing.T) {
	for _, numeral := range []string{"", "XIVQ", "12a", "X I", "Ⅻ"} {
		t.Run(numeral, func(t *testing.T) {
			_, err := RomanToArabic(numeral)
			assert.ErrorIs(t, err, domain.ErrInvalidNumeral)
		})
	}
}

func TestArabicToRoman(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "I"},
		{4, "IV"},
		{5, "V"},
		{10, "X"},
		{42, "XLII"},
		{444, "CDXLIV"},
		{1994, "MCMXCIV"},
		{2024, "MMXXIV"},
		{3999, "MMMCMXCIX"},
	}

	for _, tt := range tests {
		got, err := ArabicToRoman(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "n=%d", tt.n)
	}
}

func TestArabicToRoman_OutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, 4000, 10000} {
		got, err := ArabicToRoman(n)
		assert.ErrorIs(t, err, domain.ErrOutOfRange, "n=%d", n)
		assert.Empty(t, got)
	}
}

func TestRomanRoundTrip(t *testing.T) {
	for n := 1; n <= domain.MaxMembershipNumber; n++ {
		roman, err := ArabicToRoman(n)
		require.NoError(t, err)

		back, err := RomanToArabic(roman)
		require.NoError(t, err)
		require.Equal(t, n, back, "roman=%s", roman)
	}
}
