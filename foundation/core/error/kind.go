// File: kind.go
// Title: Exception Kinds and HTTP Codes
// Description: Defines the exception variants and their fixed HTTP status codes.
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.1.0: Initial implementation

package error

import (
	"net/http"
)

// Kind identifies the concrete exception variant
type Kind int

const (
	KindIllegalArgument Kind = iota
	KindNotImplemented
	KindInvalidParameter
	KindUnauthorized
	KindForbidden
	KindNotFound // also covers missing vault entries
	KindAlreadyExists
	KindInsufficientStorage
	KindServerUnknown
)

// HTTP status codes understood by ForHTTPCode
const (
	StatusBadRequest          = http.StatusBadRequest
	StatusUnauthorized        = http.StatusUnauthorized
	StatusForbidden           = http.StatusForbidden
	StatusNotFound            = http.StatusNotFound
	StatusAlreadyExists       = 455
	StatusInsufficientStorage = http.StatusInsufficientStorage
	StatusServerException     = http.StatusInternalServerError
)

// Internal codes
const (
	InternalCodeUnset              = -1
	InternalCodeInvalidParameter   = 1
	InternalCodeBackupInProcessing = 2
)

// String returns the variant name
func (k Kind) String() string {
	switch k {
	case KindIllegalArgument:
		return "IllegalArgument"
	case KindNotImplemented:
		return "NotImplemented"
	case KindInvalidParameter:
		return "InvalidParameter"
	case KindUnauthorized:
		return "Unauthorized"
	case KindForbidden:
		return "Forbidden"
	case KindNotFound:
		return "NotFound"
	case KindAlreadyExists:
		return "AlreadyExists"
	case KindInsufficientStorage:
		return "InsufficientStorage"
	case KindServerUnknown:
		return "ServerUnknown"
	default:
		return "Unknown"
	}
}

// IsHTTP reports whether the kind carries an HTTP status code
func (k Kind) IsHTTP() bool {
	return k >= KindInvalidParameter && k <= KindServerUnknown
}

// HTTPCode returns the status code bound to the kind. ServerUnknown reports its
// default (500); IllegalArgument and NotImplemented report 0.
func (k Kind) HTTPCode() int {
	switch k {
	case KindInvalidParameter:
		return StatusBadRequest
	case KindUnauthorized:
		return StatusUnauthorized
	case KindForbidden:
		return StatusForbidden
	case KindNotFound:
		return StatusNotFound
	case KindAlreadyExists:
		return StatusAlreadyExists
	case KindInsufficientStorage:
		return StatusInsufficientStorage
	case KindServerUnknown:
		return StatusServerException
	default:
		return 0
	}
}

// KindForHTTPCode maps a status code to its variant. Unmapped codes, 500
// included, map to KindServerUnknown.
func KindForHTTPCode(code int) Kind {
	switch code {
	case StatusBadRequest:
		return KindInvalidParameter
	case StatusUnauthorized:
		return KindUnauthorized
	case StatusForbidden:
		return KindForbidden
	case StatusNotFound:
		return KindNotFound
	case StatusAlreadyExists:
		return KindAlreadyExists
	case StatusInsufficientStorage:
		return KindInsufficientStorage
	default:
		return KindServerUnknown
	}
}

// AllKinds returns every variant in declaration order
func AllKinds() []Kind {
	return []Kind{
		KindIllegalArgument,
		KindNotImplemented,
		KindInvalidParameter,
		KindUnauthorized,
		KindForbidden,
		KindNotFound,
		KindAlreadyExists,
		KindInsufficientStorage,
		KindServerUnknown,
	}
}
