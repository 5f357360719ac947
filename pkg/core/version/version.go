// ============================================================================
// commons - Shared Service Utilities
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and its packages
// Created:     2026-10-06
// License:     MIT
// ============================================================================

package version

// Version constants
const (
	// Library version
	Library = "1.0.0"

	// Package versions
	Log        = "1.0.0"
	Error      = "1.0.0"
	Validation = "1.0.0"
	Base64     = "1.0.0"
	Hash       = "1.0.0"
	Cache      = "1.0.0"
	Async      = "1.0.0"
)

// Build metadata, set with -ldflags "-X github.com/msto63/commons/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// PackageVersion returns the version for a given package name
func PackageVersion(name string) string {
	switch name {
	case "log":
		return Log
	case "error":
		return Error
	case "validation":
		return Validation
	case "base64", "base64x":
		return Base64
	case "hash", "hashx":
		return Hash
	case "cache":
		return Cache
	case "async":
		return Async
	default:
		return Library
	}
}

// Packages lists the names accepted by PackageVersion
func Packages() []string {
	return []string{"log", "error", "validation", "base64", "hash", "cache", "async"}
}
