// Package stringx provides small string helpers shared by the commons packages.
//
// Package: stringx
// Title: String Helpers for commons Foundation
// Description: Cryptographically secure random token generation used for
//              correlation IDs and other short identifiers.
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Usage:
//
//	token, err := stringx.RandomToken(7)     // "k3f9a0q"
//	id, err := stringx.RandomAlphanumeric(16) // mixed case letters and digits
package stringx
