package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPrice is returned for price strings that cannot be parsed into
// a monetary amount. Callers surface it as a bad-request condition instead
// of letting a malformed string degrade a total to zero.
var ErrInvalidPrice = errors.New("invalid price")

var currencySymbols = "$€£¥"

// ParsePriceCents converts a display price like "$28", "28", "$28.50" or
// "1,250.00" into integer cents. Amounts are non-negative and carry at most
// two decimal places.
func ParsePriceCents(s string) (int64, error) {
	raw := strings.TrimSpace(s)
	for _, sym := range currencySymbols {
		raw = strings.TrimPrefix(raw, string(sym))
	}
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		return 0, ErrInvalidPrice
	}

	whole := raw
	frac := ""
	if idx := strings.Index(raw, "."); idx >= 0 {
		whole = raw[:idx]
		frac = raw[idx+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, ErrInvalidPrice
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return 0, ErrInvalidPrice
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	return units*100 + cents, nil
}

// FormatCents renders cents back into the display form the tablets show:
// whole amounts lose the decimals ("$28"), others keep two ("$28.50").
func FormatCents(cents int64, symbol string) string {
	if symbol == "" {
		symbol = "$"
	}
	if cents%100 == 0 {
		return fmt.Sprintf("%s%d", symbol, cents/100)
	}
	return fmt.Sprintf("%s%d.%02d", symbol, cents/100, cents%100)
}
