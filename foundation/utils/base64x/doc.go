// Package base64x converts between text, hex and URL-safe base64.
//
// Package: base64x
// Title: Base64 Codec with URL-Safe Variants
// Description: Encoders always produce the URL-safe alphabet ("-" and "_") with the
//              trailing "=" padding stripped. Decoders accept standard or URL-safe
//              input, padded or not.
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-09-30
//
// Usage:
//
//	b64 := base64x.FromString("Source Value") // "U291cmNlIFZhbHVl"
//	s, err := base64x.ToString(b64)
//
//	id := base64x.FromHex("4444")             // "REQ"
//	hex, err := base64x.ToHex(id)
package base64x
