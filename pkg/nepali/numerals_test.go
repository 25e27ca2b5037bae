package nepali

import (
	"strings"
	"testing"
)

func TestToWordsNepali(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "शून्य"},
		{1, "एक"},
		{19, "उन्नाइस"},
		{55, "पचपन्न"},
		{100, "एक सय"},
		{101, "एक सय एक"},
		{999, "नौ सय उनान्सय"},
		{1000, "एक हजार"},
		{1440, "एक हजार चार सय चालीस"},
		{5000, "पाँच हजार"},
		{12345, "बाह्र हजार तीन सय पैँतालीस"},
		{100000, "एक लाख"},
		{2500000, "पच्चिस लाख"},
		{10000000, "एक करोड"},
		{12345678, "एक करोड तेइस लाख पैँतालीस हजार छ सय अठहत्तर"},
	}
	for _, tt := range tests {
		if got := ToWords(tt.amount, LocaleNepali); got != tt.want {
			t.Errorf("ToWords(%d, ne) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestToWordsEnglish(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Rupees Zero Only"},
		{5000, "Rupees 5,000 Only"},
		{1234567, "Rupees 1,234,567 Only"},
	}
	for _, tt := range tests {
		if got := ToWords(tt.amount, LocaleEnglish); got != tt.want {
			t.Errorf("ToWords(%d, en) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

// Words conversion must be a pure function: repeated calls with the same
// amount yield the same string.
func TestToWordsDeterministic(t *testing.T) {
	for _, amount := range []int64{0, 7, 1440, 5000, 123456789} {
		first := ToWords(amount, LocaleNepali)
		for i := 0; i < 3; i++ {
			if got := ToWords(amount, LocaleNepali); got != first {
				t.Fatalf("ToWords(%d) not deterministic: %q vs %q", amount, got, first)
			}
		}
	}
}

func TestToWordsNegative(t *testing.T) {
	if got := ToWords(-5, LocaleNepali); got != "ऋणात्मक पाँच" {
		t.Errorf("got %q", got)
	}
	if got := ToWords(-5, LocaleEnglish); got != "Minus Rupees 5 Only" {
		t.Errorf("got %q", got)
	}
}

func TestGroupedCurrency(t *testing.T) {
	tests := []struct {
		amount int64
		locale Locale
		want   string
	}{
		{0, LocaleEnglish, "Rs. 0"},
		{5000, LocaleEnglish, "Rs. 5,000"},
		{1234567, LocaleEnglish, "Rs. 1,234,567"},
		{0, LocaleNepali, "रु ०"},
		{5000, LocaleNepali, "रु ५,०००"},
		{1234567, LocaleNepali, "रु १२,३४,५६७"},
		{123456789, LocaleNepali, "रु १२,३४,५६,७८९"},
	}
	for _, tt := range tests {
		if got := GroupedCurrency(tt.amount, tt.locale); got != tt.want {
			t.Errorf("GroupedCurrency(%d, %s) = %q, want %q", tt.amount, tt.locale, got, tt.want)
		}
	}
}

// Stripping the glyph and separators from a grouped rendering must parse
// back to the original amount.
func TestGroupedCurrencyRoundTrip(t *testing.T) {
	asciiDigits := map[rune]rune{
		'०': '0', '१': '1', '२': '2', '३': '3', '४': '4',
		'५': '5', '६': '6', '७': '7', '८': '8', '९': '9',
	}
	for _, amount := range []int64{0, 9, 999, 1000, 54321, 9999999, 123456789} {
		for _, locale := range []Locale{LocaleEnglish, LocaleNepali} {
			s := GroupedCurrency(amount, locale)
			var digits strings.Builder
			for _, r := range s {
				if a, ok := asciiDigits[r]; ok {
					r = a
				}
				if r >= '0' && r <= '9' {
					digits.WriteRune(r)
				}
			}
			var parsed int64
			for _, r := range digits.String() {
				parsed = parsed*10 + int64(r-'0')
			}
			if parsed != amount {
				t.Errorf("round trip %d (%s): rendered %q, parsed %d", amount, locale, s, parsed)
			}
		}
	}
}

func TestToNepaliDigits(t *testing.T) {
	if got := ToNepaliDigits("2081/01/15"); got != "२०८१/०१/१५" {
		t.Errorf("got %q", got)
	}
}
