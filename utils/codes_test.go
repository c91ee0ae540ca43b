package utils

import (
	"strings"
	"testing"
)

func TestGenerateDigitCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateDigitCode(4)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(code) != 4 {
			t.Fatalf("code %q, want 4 digits", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("code %q contains non-digit", code)
			}
		}
	}
}

func TestGenerateBookingReference(t *testing.T) {
	ref, err := GenerateBookingReference()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(ref, "BK-") {
		t.Errorf("reference %q missing BK- prefix", ref)
	}
	if len(ref) != 7 {
		t.Errorf("reference %q, want BK- plus 4 digits", ref)
	}
}
