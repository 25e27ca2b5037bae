package utils

import (
	"strings"
	"testing"
)

func TestGenerateReceiptNumberFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := GenerateReceiptNumber()
		if !strings.HasPrefix(n, ReceiptNumberPrefix) {
			t.Fatalf("GenerateReceiptNumber() = %q, want %q prefix", n, ReceiptNumberPrefix)
		}
		if len(n) != len(ReceiptNumberPrefix)+6 {
			t.Fatalf("GenerateReceiptNumber() = %q, want 6-digit suffix", n)
		}
		if !IsReceiptNumber(n) {
			t.Fatalf("IsReceiptNumber(%q) = false for generated number", n)
		}
	}
}

func TestIsReceiptNumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"ASH123456", true},
		{"ASH000000", true},
		{"ash123456", false},
		{"ASH", false},
		{"ASH12A456", false},
		{"XYZ123456", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsReceiptNumber(tt.in); got != tt.want {
			t.Errorf("IsReceiptNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
