// File: sha256.go
// Title: SHA-256 Helpers
// Description: Digest helpers over crypto/sha256 and golang.org/x/crypto/ripemd160.
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-09-30
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation

package hashx

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strings"

	"golang.org/x/crypto/ripemd160"

	cmnerror "github.com/msto63/commons/foundation/core/error"
)

// Supported algorithm names for NewHash
const (
	AlgorithmSHA256    = "sha256"
	AlgorithmRIPEMD160 = "ripemd160"
)

// NewHash returns a fresh hash.Hash for the named algorithm
func NewHash(algorithm string) (hash.Hash, error) {
	switch strings.ToLower(algorithm) {
	case "", AlgorithmSHA256:
		return sha256.New(), nil
	case AlgorithmRIPEMD160:
		return ripemd160.New(), nil
	default:
		return nil, cmnerror.IllegalArgument("unsupported hash algorithm " + algorithm)
	}
}

// HashTwice returns SHA-256(SHA-256(data))
func HashTwice(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// SHA256RIPEMD160 returns RIPEMD-160(SHA-256(data))
func SHA256RIPEMD160(data []byte) []byte {
	first := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(first[:])
	return h.Sum(nil)
}

// EncodeToBuffer returns the SHA-256 of all inputs concatenated in order
func EncodeToBuffer(inputs ...[]byte) []byte {
	h := sha256.New()
	for _, in := range inputs {
		h.Write(in)
	}
	return h.Sum(nil)
}

// EncodeToString returns EncodeToBuffer as lowercase hex
func EncodeToString(inputs ...[]byte) string {
	return hex.EncodeToString(EncodeToBuffer(inputs...))
}
