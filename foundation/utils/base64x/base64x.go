// File: base64x.go
// Title: Base64 Codec
// Description: String, hex and URL format conversions over encoding/base64.
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-09-30
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation

package base64x

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	cmnerror "github.com/msto63/commons/foundation/core/error"
)

var (
	toURLReplacer   = strings.NewReplacer("+", "-", "/", "_")
	fromURLReplacer = strings.NewReplacer("-", "+", "_", "/")
)

// FromString encodes UTF-8 text as unpadded URL-safe base64
func FromString(value string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(value))
}

// ToString decodes standard or URL-safe base64 into text
func ToString(b64 string) (string, error) {
	raw, err := decodeBytes(b64)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// FromHex encodes a hex string as unpadded URL-safe base64
func FromHex(hexString string) (string, error) {
	return Encode(hexString)
}

// ToHex decodes standard or URL-safe base64 into a lowercase hex string
func ToHex(b64 string) (string, error) {
	return Decode(b64)
}

// Encode converts a hex string to unpadded URL-safe base64
func Encode(hexString string) (string, error) {
	raw, err := hex.DecodeString(hexString)
	if err != nil {
		return "", cmnerror.IllegalArgument("invalid hex string").WithCause(err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Decode converts base64 to a lowercase hex string
func Decode(b64 string) (string, error) {
	raw, err := decodeBytes(b64)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// ToURLFormat converts standard base64 to the URL-safe alphabet and strips the
// trailing padding.
func ToURLFormat(b64 string) string {
	return strings.TrimRight(toURLReplacer.Replace(b64), "=")
}

// FromURLFormat converts URL-safe base64 to the standard alphabet and restores
// the padding to a multiple of four characters.
func FromURLFormat(b64u string) string {
	s := fromURLReplacer.Replace(strings.TrimRight(b64u, "="))
	if rem := len(s) % 4; rem != 0 {
		s += strings.Repeat("=", 4-rem)
	}
	return s
}

// decodeBytes normalises the alphabet and padding before decoding
func decodeBytes(b64 string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(FromURLFormat(b64))
	if err != nil {
		return nil, cmnerror.IllegalArgument("invalid base64 string").WithCause(err)
	}
	return raw, nil
}
