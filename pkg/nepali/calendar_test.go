package nepali

import (
	"testing"
	"time"
)

func TestToNepali(t *testing.T) {
	d := ToNepali(time.Date(2024, 8, 15, 10, 0, 0, 0, time.UTC))
	if d.Year != 2081 || d.Month != 8 || d.Day != 15 {
		t.Fatalf("got %+v, want 2081-08-15", d)
	}
	// Month 8 reused numerically maps to मंसिर, not the real-world BS
	// month for mid-August.
	if d.MonthName() != "मंसिर" {
		t.Errorf("month name = %q, want मंसिर", d.MonthName())
	}
}

func TestToNepaliFormatted(t *testing.T) {
	got := ToNepaliFormatted(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	want := "1 बैशाख 2081"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToNepaliDateTime(t *testing.T) {
	got := ToNepaliDateTime(time.Date(2024, 8, 15, 22, 5, 0, 0, time.UTC))
	want := "15 मंसिर 2081, 10:05 PM"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToEnglish(t *testing.T) {
	tests := []struct {
		in   string
		want string // "" means nil expected
	}{
		{"2081/01/01", "2024-01-01"},
		{"2081-01-15", "2024-01-15"},
		{"2081/12/30", "2024-12-30"},
		{" 2081/05/07 ", "2024-05-07"},
		{"not-a-date", ""},
		{"", ""},
		{"2081/13/01", ""},
		{"2081/00/10", ""},
		{"2081/02/30", ""}, // normalization overflow rejected
		{"81/01/01", ""},
	}
	for _, tt := range tests {
		got := ToEnglish(tt.in)
		if tt.want == "" {
			if got != nil {
				t.Errorf("ToEnglish(%q) = %v, want nil", tt.in, got)
			}
			continue
		}
		if got == nil {
			t.Errorf("ToEnglish(%q) = nil, want %s", tt.in, tt.want)
			continue
		}
		if got.Format("2006-01-02") != tt.want {
			t.Errorf("ToEnglish(%q) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
		}
	}
}

// The approximate conversion must round-trip to the same calendar day:
// format a Gregorian date as a BS numeric string, parse it back, and the
// original day is recovered.
func TestRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	for _, orig := range dates {
		bs := ToNepali(orig)
		s := time.Date(bs.Year, time.Month(bs.Month), bs.Day, 0, 0, 0, 0, time.UTC).Format("2006/01/02")
		back := ToEnglish(s)
		if back == nil {
			t.Fatalf("round trip of %s: parse returned nil for %q", orig.Format("2006-01-02"), s)
		}
		if !back.Equal(orig) {
			t.Errorf("round trip of %s: got %s", orig.Format("2006-01-02"), back.Format("2006-01-02"))
		}
	}
}

func TestFallbackEnglish(t *testing.T) {
	got := FallbackEnglish(time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC))
	if got != "15 August 2024" {
		t.Errorf("got %q", got)
	}
}
