package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// GenerateOTP returns a cryptographically random numeric code of the given
// length, zero-padded on the left.
func GenerateOTP(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("otp length must be positive, got %d", length)
	}

	max := big.NewInt(1)
	for i := 0; i < length; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}
	return fmt.Sprintf("%0*d", length, n), nil
}

// NormalizePhone strips whitespace from a submitted phone number.
func NormalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}
