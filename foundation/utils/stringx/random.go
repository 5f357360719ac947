// File: random.go
// Title: Secure Random String Generation
// Description: Implements random string generation on top of crypto/rand.
//              Used for correlation IDs and other short tokens.
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with secure random generation

package stringx

import (
	"crypto/rand"
	"math/big"
)

const (
	// Character sets for random string generation
	LettersLowercase = "abcdefghijklmnopqrstuvwxyz"
	LettersUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters          = LettersLowercase + LettersUppercase
	Digits           = "0123456789"
	Alphanumeric     = Letters + Digits

	// Base36 is the digit-first lowercase alphabet of base 36 numbers
	Base36 = Digits + LettersLowercase

	HexDigits = "0123456789abcdef"
)

// RandomString generates a cryptographically secure random string of the specified length
// using the provided character set. If charset is empty, it defaults to Alphanumeric.
func RandomString(length int, charset string) (string, error) {
	if length <= 0 {
		return "", nil
	}

	if charset == "" {
		charset = Alphanumeric
	}

	result := make([]byte, length)
	charsetLen := big.NewInt(int64(len(charset)))

	for i := 0; i < length; i++ {
		randomIndex, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", err
		}
		result[i] = charset[randomIndex.Int64()]
	}

	return string(result), nil
}

// RandomAlphanumeric generates a random mixed case alphanumeric string.
func RandomAlphanumeric(length int) (string, error) {
	return RandomString(length, Alphanumeric)
}

// RandomToken generates a random lowercase base36 token, the shape used for
// correlation IDs.
func RandomToken(length int) (string, error) {
	return RandomString(length, Base36)
}

// RandomHex generates a random hexadecimal string of the specified length.
func RandomHex(length int) (string, error) {
	return RandomString(length, HexDigits)
}
