package nepali

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// YearOffset is the fixed difference between a Bikram Sambat year and the
// Gregorian year. This is an approximation: the BS new year falls in
// mid-April and BS month lengths differ from Gregorian months, so the
// converted day/month are reused numerically rather than recomputed.
// Receipts already issued were generated with this approximation, so it is
// kept for compatibility.
const YearOffset = 57

// monthNames holds the twelve Bikram Sambat month names in Devanagari,
// indexed by month number - 1.
var monthNames = [12]string{
	"बैशाख", "जेठ", "असार", "साउन", "भदौ", "असोज",
	"कार्तिक", "मंसिर", "पुष", "माघ", "फागुन", "चैत",
}

// Date is an approximate Bikram Sambat date.
type Date struct {
	Year  int
	Month int // 1..12
	Day   int
}

// MonthName returns the Devanagari month name, or an empty string when the
// month is out of range.
func (d Date) MonthName() string {
	if d.Month < 1 || d.Month > 12 {
		return ""
	}
	return monthNames[d.Month-1]
}

// ToNepali converts a Gregorian date to the approximate BS date.
func ToNepali(t time.Time) Date {
	return Date{
		Year:  t.Year() + YearOffset,
		Month: int(t.Month()),
		Day:   t.Day(),
	}
}

// ToNepaliFormatted renders a Gregorian date as "D MonthName YYYY" using the
// approximate BS conversion, e.g. "15 साउन 2081". If the month name cannot
// be resolved the English date is returned instead so the receipt always
// carries some date string.
func ToNepaliFormatted(t time.Time) string {
	d := ToNepali(t)
	name := d.MonthName()
	if name == "" {
		return FallbackEnglish(t)
	}
	return fmt.Sprintf("%d %s %d", d.Day, name, d.Year)
}

// ToNepaliDateTime renders the formatted BS date followed by a 12-hour
// clock time, e.g. "15 साउन 2081, 10:30 AM".
func ToNepaliDateTime(t time.Time) string {
	return ToNepaliFormatted(t) + ", " + t.Format("3:04 PM")
}

var nepaliDatePattern = regexp.MustCompile(`^(\d{4})[/-](\d{1,2})[/-](\d{1,2})$`)

// ToEnglish parses a "YYYY/MM/DD" or "YYYY-MM-DD" BS date string and
// returns the approximate Gregorian date. It returns nil on malformed or
// out-of-range input, never an error, so callers can fall back gracefully.
func ToEnglish(s string) *time.Time {
	m := nepaliDatePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || day < 1 || day > 32 {
		return nil
	}
	t := time.Date(year-YearOffset, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (e.g. Feb 30 -> Mar 2); reject those.
	if int(t.Month()) != month || t.Day() != day {
		return nil
	}
	return &t
}

// FallbackEnglish formats a date the way the layout falls back to when
// Nepali rendering is not possible, e.g. "15 August 2024".
func FallbackEnglish(t time.Time) string {
	return t.Format("2 January 2006")
}
