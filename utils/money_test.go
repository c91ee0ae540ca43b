package utils

import (
	"errors"
	"testing"
)

func TestParsePriceCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"$28", 2800},
		{"28", 2800},
		{"$28.50", 2850},
		{"28.5", 2850},
		{"$1,250.00", 125000},
		{"€16", 1600},
		{"0", 0},
		{".99", 99},
	}
	for _, tc := range cases {
		got, err := ParsePriceCents(tc.in)
		if err != nil {
			t.Errorf("ParsePriceCents(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePriceCents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParsePriceCentsRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "  ", "twenty", "$-5", "1.999", "$"} {
		if _, err := ParsePriceCents(in); !errors.Is(err, ErrInvalidPrice) {
			t.Errorf("ParsePriceCents(%q): err = %v, want ErrInvalidPrice", in, err)
		}
	}
}

func TestFormatCents(t *testing.T) {
	if got := FormatCents(2800, "$"); got != "$28" {
		t.Errorf("FormatCents(2800) = %q, want $28", got)
	}
	if got := FormatCents(2850, "$"); got != "$28.50" {
		t.Errorf("FormatCents(2850) = %q, want $28.50", got)
	}
	if got := FormatCents(99, ""); got != "$0.99" {
		t.Errorf("FormatCents(99) = %q, want $0.99", got)
	}
}
