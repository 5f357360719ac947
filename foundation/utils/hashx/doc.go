// Package hashx provides the digest helpers used for identifiers and checksums.
//
// Package: hashx
// Title: SHA-256 / RIPEMD-160 Hashing and Hash Codes
// Description: Double SHA-256, SHA-256 followed by RIPEMD-160 (the usual address
//              digest), concatenate-then-hash over several buffers and a Java style
//              32-bit hashCode for strings, numbers and booleans.
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-09-30
//
// Usage:
//
//	digest := hashx.HashTwice(payload)
//	addr := hashx.SHA256RIPEMD160(pubKey)
//	sum := hashx.EncodeToString(header, body) // hex of sha256(header || body)
//
//	code, err := hashx.HashCode("vault-42")
package hashx
