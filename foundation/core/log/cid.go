// File: cid.go
// Title: Correlation ID Generators
// Description: Sources for the short tokens that tag a logger's lines.
// Version: v0.3.0
// Created: 2026-09-28
// Modified: 2026-10-19
//
// Change History:
// - 2026-09-28 v0.1.0: Random base36 CIDs
// - 2026-10-12 v0.2.0: UUID-derived CIDs
// - 2026-10-19 v0.3.0: Alphanumeric and hex CIDs

package log

import (
	"github.com/google/uuid"

	cmnstringx "github.com/msto63/commons/foundation/utils/stringx"
)

// DefaultCIDLength is the length of CIDs produced by the default generator
const DefaultCIDLength = 7

// uuidCIDLength keeps the tail of a UUID, which holds its random node bits
const uuidCIDLength = 10

// CIDGenerator produces a new correlation ID
type CIDGenerator func() string

// RandomCID returns a generator of random lowercase base36 tokens.
// A non-positive length falls back to DefaultCIDLength.
func RandomCID(length int) CIDGenerator {
	return charsetCID(length, cmnstringx.RandomToken)
}

// AlphanumericCID returns a generator of random mixed-case alphanumeric tokens
func AlphanumericCID(length int) CIDGenerator {
	return charsetCID(length, cmnstringx.RandomAlphanumeric)
}

// HexCID returns a generator of random lowercase hex tokens
func HexCID(length int) CIDGenerator {
	return charsetCID(length, cmnstringx.RandomHex)
}

func charsetCID(length int, random func(int) (string, error)) CIDGenerator {
	if length <= 0 {
		length = DefaultCIDLength
	}
	return func() string {
		token, err := random(length)
		if err != nil {
			// crypto/rand only fails when the OS source is unusable
			return UUIDCID()
		}
		return token
	}
}

// UUIDCID returns the last ten characters of a random UUID
func UUIDCID() string {
	id := uuid.New().String()
	return id[len(id)-uuidCIDLength:]
}
