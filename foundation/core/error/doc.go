// Package error provides the HTTP-aware exception taxonomy shared by commons services.
//
// Package: error
// Title: commons Exception Taxonomy
// Description: Implements a single tagged error type, *Exception, whose Kind selects
//              one of a fixed set of variants. HTTP-coded kinds carry a status code
//              and an application-defined internal code that can drive an API
//              response. ForHTTPCode maps a numeric status back to its variant, with
//              ServerUnknown as the catch-all that preserves unmapped codes.
// Version: v0.2.0
// Created: 2026-09-29
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-29 v0.1.0: Initial implementation with kinds and HTTP mapping
// - 2026-10-12 v0.2.0: Construction no longer logs; Report added
//
// Kinds and status codes:
//
//	IllegalArgument      -   (no HTTP code)
//	NotImplemented       -   (no HTTP code)
//	InvalidParameter     400
//	Unauthorized         401
//	Forbidden            403
//	NotFound             404
//	AlreadyExists        455
//	InsufficientStorage  507
//	ServerUnknown        any other code, 500 by default
//
// Usage:
//
//	import cmnerror "github.com/msto63/commons/foundation/core/error"
//
//	err := cmnerror.NotFound("vault not found").WithInternalCode(7)
//	cmnerror.Report(logger, err)
//
//	if errors.Is(err, cmnerror.ErrNotFound) {
//	    status := cmnerror.HTTPStatus(err) // 404
//	}
//
//	// Map a status received from a remote node
//	remote := cmnerror.ForHTTPCode(resp.StatusCode, body, 0, nil)
//
// Constructing an exception has no side effects. Logging is the caller's job,
// usually through Report.
package error
