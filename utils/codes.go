package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"strings"
)

const digitCharset = "0123456789"

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// GenerateDigitCode returns an n-digit numeric code, e.g. a door code
// "8821". Uses crypto/rand with rand.Int to avoid modulo bias.
func GenerateDigitCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(digitCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(digitCharset[num.Int64()])
	}
	return sb.String(), nil
}

// GenerateBookingReference returns a reference like "BK-7829".
func GenerateBookingReference() (string, error) {
	code, err := GenerateDigitCode(4)
	if err != nil {
		return "", err
	}
	return "BK-" + code, nil
}
