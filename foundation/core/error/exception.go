// File: exception.go
// Title: Exception Implementation
// Description: Implements *Exception, the tagged error value carrying a kind, a
//              message, an optional cause and HTTP/internal codes.
// Version: v0.2.0
// Created: 2026-09-29
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-29 v0.1.0: Initial implementation with stack capture
// - 2026-10-12 v0.2.0: Sentinels for errors.Is, JSON encoding

package error

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime"
)

// MaxStackFrames limits the number of stack frames captured
const MaxStackFrames = 20

// Exception is the single error type of the taxonomy
type Exception struct {
	kind         Kind
	message      string
	cause        error
	httpCode     int
	internalCode int
	stackTrace   []StackFrame
	sentinel     bool
}

// StackFrame represents a single frame in the stack trace
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// Sentinels for errors.Is. A sentinel matches every exception of its kind.
var (
	ErrIllegalArgument     = sentinel(KindIllegalArgument)
	ErrNotImplemented      = sentinel(KindNotImplemented)
	ErrInvalidParameter    = sentinel(KindInvalidParameter)
	ErrUnauthorized        = sentinel(KindUnauthorized)
	ErrForbidden           = sentinel(KindForbidden)
	ErrNotFound            = sentinel(KindNotFound)
	ErrAlreadyExists       = sentinel(KindAlreadyExists)
	ErrInsufficientStorage = sentinel(KindInsufficientStorage)
	ErrServerUnknown       = sentinel(KindServerUnknown)
)

func sentinel(kind Kind) *Exception {
	return &Exception{
		kind:         kind,
		message:      kind.String(),
		httpCode:     kind.HTTPCode(),
		internalCode: InternalCodeUnset,
		sentinel:     true,
	}
}

// newException is called by the exported constructors only, so the stack skip
// is fixed.
func newException(kind Kind, httpCode int, message string) *Exception {
	return &Exception{
		kind:         kind,
		message:      message,
		httpCode:     httpCode,
		internalCode: InternalCodeUnset,
		stackTrace:   captureStackTrace(4),
	}
}

// IllegalArgument reports invalid or missing input
func IllegalArgument(message string) *Exception {
	return newException(KindIllegalArgument, 0, message)
}

// NotImplemented reports an unfinished capability
func NotImplemented(message string) *Exception {
	return newException(KindNotImplemented, 0, message)
}

// InvalidParameter creates a 400 exception
func InvalidParameter(message string) *Exception {
	return newException(KindInvalidParameter, StatusBadRequest, message)
}

// Unauthorized creates a 401 exception
func Unauthorized(message string) *Exception {
	return newException(KindUnauthorized, StatusUnauthorized, message)
}

// Forbidden creates a 403 exception
func Forbidden(message string) *Exception {
	return newException(KindForbidden, StatusForbidden, message)
}

// NotFound creates a 404 exception
func NotFound(message string) *Exception {
	return newException(KindNotFound, StatusNotFound, message)
}

// AlreadyExists creates a 455 exception
func AlreadyExists(message string) *Exception {
	return newException(KindAlreadyExists, StatusAlreadyExists, message)
}

// InsufficientStorage creates a 507 exception
func InsufficientStorage(message string) *Exception {
	return newException(KindInsufficientStorage, StatusInsufficientStorage, message)
}

// ServerUnknown creates an exception that keeps an arbitrary status code
func ServerUnknown(httpCode int, message string) *Exception {
	return newException(KindServerUnknown, httpCode, message)
}

// ForHTTPCode builds the variant bound to httpCode. An internalCode of 0 is
// treated as unset and stored as -1. cause may be nil.
func ForHTTPCode(httpCode int, message string, internalCode int, cause error) *Exception {
	kind := KindForHTTPCode(httpCode)

	code := kind.HTTPCode()
	if kind == KindServerUnknown {
		code = httpCode
	}

	e := newException(kind, code, message)
	if internalCode != 0 {
		e.internalCode = internalCode
	}
	e.cause = cause
	return e
}

// WithCause sets the underlying cause. The cause is only read for display
// and unwrapping.
func (e *Exception) WithCause(cause error) *Exception {
	e.cause = cause
	return e
}

// WithInternalCode sets the application-defined sub-code
func (e *Exception) WithInternalCode(code int) *Exception {
	e.internalCode = code
	return e
}

// Error implements the standard error interface
func (e *Exception) Error() string {
	message := e.message
	if message == "" {
		message = e.kind.String()
	}
	if e.cause != nil {
		return message + ": " + e.cause.Error()
	}
	return message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Exception) Unwrap() error {
	return e.cause
}

// Is matches kind sentinels such as ErrNotFound
func (e *Exception) Is(target error) bool {
	t, ok := target.(*Exception)
	if !ok || !t.sentinel {
		return false
	}
	return t.kind == e.kind
}

// Kind returns the variant
func (e *Exception) Kind() Kind {
	return e.kind
}

// Message returns the message without the cause chain
func (e *Exception) Message() string {
	return e.message
}

// Cause returns the underlying cause, or nil
func (e *Exception) Cause() error {
	return e.cause
}

// HTTPCode returns the status code, 0 for kinds without one
func (e *Exception) HTTPCode() int {
	return e.httpCode
}

// InternalCode returns the sub-code, -1 when unset
func (e *Exception) InternalCode() int {
	return e.internalCode
}

// StackTrace returns the frames captured at construction
func (e *Exception) StackTrace() []StackFrame {
	result := make([]StackFrame, len(e.stackTrace))
	copy(result, e.stackTrace)
	return result
}

// MarshalJSON implements json.Marshaler for API responses
func (e *Exception) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"kind":          e.kind.String(),
		"message":       e.message,
		"internal_code": e.internalCode,
	}

	if e.httpCode != 0 {
		data["http_code"] = e.httpCode
	}

	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}

	return json.Marshal(data)
}

// KindOf returns the kind of the first *Exception in err's chain
func KindOf(err error) (Kind, bool) {
	var e *Exception
	if errors.As(err, &e) {
		return e.kind, true
	}
	return KindServerUnknown, false
}

// HTTPStatus returns the status to answer with for err. Kinds without an HTTP
// code map to 400 (IllegalArgument) and 501 (NotImplemented); errors outside the
// taxonomy map to 500. A nil error maps to 200.
func HTTPStatus(err error) int {
	if err == nil {
		return 200
	}

	var e *Exception
	if !errors.As(err, &e) {
		return StatusServerException
	}

	switch e.kind {
	case KindIllegalArgument:
		return StatusBadRequest
	case KindNotImplemented:
		return http.StatusNotImplemented
	}

	if e.httpCode == 0 {
		return StatusServerException
	}
	return e.httpCode
}

// captureStackTrace captures the current stack trace
func captureStackTrace(skip int) []StackFrame {
	pcs := make([]uintptr, MaxStackFrames)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	result := make([]StackFrame, 0, n)
	for {
		frame, more := frames.Next()
		result = append(result, StackFrame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}

	return result
}
