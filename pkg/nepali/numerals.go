package nepali

import (
	"strconv"
	"strings"
)

// Locale selects the output language for amount formatting.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleNepali  Locale = "ne"
)

// nepaliDigits maps ASCII digits to their Devanagari counterparts.
var nepaliDigits = map[rune]rune{
	'0': '०', '1': '१', '2': '२', '3': '३', '4': '४',
	'5': '५', '6': '६', '7': '७', '8': '८', '9': '९',
}

// onesWords covers 0..99 in Nepali. The teens and irregular tens forms do
// not decompose, so the full table is spelled out.
var onesWords = [100]string{
	"शून्य", "एक", "दुई", "तीन", "चार", "पाँच", "छ", "सात", "आठ", "नौ",
	"दश", "एघार", "बाह्र", "तेह्र", "चौध", "पन्ध्र", "सोह्र", "सत्र", "अठार", "उन्नाइस",
	"बीस", "एक्काइस", "बाइस", "तेइस", "चौबिस", "पच्चिस", "छब्बिस", "सत्ताइस", "अठ्ठाइस", "उनन्तिस",
	"तीस", "एकतिस", "बत्तिस", "तेत्तिस", "चौँतिस", "पैँतिस", "छत्तिस", "सैँतिस", "अठतिस", "उनन्चालीस",
	"चालीस", "एकचालीस", "बयालीस", "त्रिचालीस", "चवालीस", "पैँतालीस", "छयालीस", "सतचालीस", "अठचालीस", "उनन्चास",
	"पचास", "एकाउन्न", "बाउन्न", "त्रिपन्न", "चवन्न", "पचपन्न", "छपन्न", "सन्ताउन्न", "अन्ठाउन्न", "उनन्साठी",
	"साठी", "एकसट्ठी", "बयसट्ठी", "त्रिसट्ठी", "चौंसट्ठी", "पैंसट्ठी", "छयसट्ठी", "सतसट्ठी", "अठसट्ठी", "उनन्सत्तरी",
	"सत्तरी", "एकहत्तर", "बहत्तर", "त्रिहत्तर", "चौहत्तर", "पचहत्तर", "छयहत्तर", "सतहत्तर", "अठहत्तर", "उनासी",
	"असी", "एकासी", "बयासी", "त्रियासी", "चौरासी", "पचासी", "छयासी", "सतासी", "अठासी", "उनान्नब्बे",
	"नब्बे", "एकानब्बे", "बयानब्बे", "त्रियानब्बे", "चौरानब्बे", "पन्चानब्बे", "छयानब्बे", "सन्तानब्बे", "अन्ठानब्बे", "उनान्सय",
}

// Magnitude bands for the South Asian numbering system.
const (
	crore    = 10_000_000
	lakh     = 100_000
	thousand = 1_000
	hundred  = 100
)

// ToWords spells out a whole-rupee amount in the requested locale.
// English follows the fixed template "Rupees {grouped} Only"; Nepali
// decomposes recursively by crore/lakh/thousand/hundred bands, with zero
// mapping to the literal "शून्य". Identical amounts always yield identical
// strings. Negative amounts are outside the domain but are rendered with a
// negative-word prefix rather than panicking.
func ToWords(amount int64, locale Locale) string {
	if locale == LocaleNepali {
		if amount < 0 {
			return "ऋणात्मक " + ToWords(-amount, locale)
		}
		return nepaliWords(amount)
	}
	if amount < 0 {
		return "Minus " + ToWords(-amount, locale)
	}
	if amount == 0 {
		return "Rupees Zero Only"
	}
	return "Rupees " + groupDigits(amount, LocaleEnglish) + " Only"
}

// nepaliWords returns the bare Nepali spelling of a positive amount,
// without the currency suffix.
func nepaliWords(n int64) string {
	switch {
	case n >= crore:
		return joinWords(nepaliWords(n/crore)+" करोड", n%crore)
	case n >= lakh:
		return joinWords(nepaliWords(n/lakh)+" लाख", n%lakh)
	case n >= thousand:
		return joinWords(nepaliWords(n/thousand)+" हजार", n%thousand)
	case n >= hundred:
		return joinWords(nepaliWords(n/hundred)+" सय", n%hundred)
	default:
		return onesWords[n]
	}
}

func joinWords(head string, rest int64) string {
	if rest == 0 {
		return head
	}
	return head + " " + nepaliWords(rest)
}

// GroupedCurrency formats a whole-rupee amount with the locale's currency
// glyph and digit grouping: "Rs. 1,234,567" (Western 3-3-3) for English and
// "रु १२,३४,५६७" (lakh/crore 2-2-3, Devanagari digits) for Nepali.
// Stripping separators and the glyph always parses back to the same amount.
func GroupedCurrency(amount int64, locale Locale) string {
	if locale == LocaleNepali {
		return "रु " + ToNepaliDigits(groupDigits(amount, locale))
	}
	return "Rs. " + groupDigits(amount, locale)
}

// groupDigits applies the locale's grouping convention to the decimal
// rendering of amount, ASCII digits only.
func groupDigits(amount int64, locale Locale) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)

	var groups []string
	if locale == LocaleNepali {
		// Last three digits, then pairs: 12,34,567.
		if len(s) > 3 {
			head, tail := s[:len(s)-3], s[len(s)-3:]
			for len(head) > 2 {
				groups = append([]string{head[len(head)-2:]}, groups...)
				head = head[:len(head)-2]
			}
			groups = append([]string{head}, groups...)
			groups = append(groups, tail)
		} else {
			groups = []string{s}
		}
	} else {
		for len(s) > 3 {
			groups = append([]string{s[len(s)-3:]}, groups...)
			s = s[:len(s)-3]
		}
		groups = append([]string{s}, groups...)
	}

	out := strings.Join(groups, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// ToNepaliDigits transliterates ASCII digits in s to Devanagari digits,
// leaving everything else untouched.
func ToNepaliDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if d, ok := nepaliDigits[r]; ok {
			return d
		}
		return r
	}, s)
}
