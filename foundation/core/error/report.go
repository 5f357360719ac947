// File: report.go
// Title: Exception Reporting
// Description: Renders an exception with its full cause chain and writes it to a
//              logger at ERROR level under the exception's kind name.
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Replaces logging on construction

package error

import (
	"errors"
	"fmt"
	"strings"

	cmnlog "github.com/msto63/commons/foundation/core/log"
)

// MaxCauseDepth limits how many causes Render follows
const MaxCauseDepth = 15

// Render returns the message of err followed by one "Caused by:" line per cause.
// Causes that are exceptions also show the frame they were created at.
func Render(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(ownMessage(err))

	cause := errors.Unwrap(err)
	for depth := 0; cause != nil; depth++ {
		if depth == MaxCauseDepth {
			b.WriteString("\nCaused by: ... (chain truncated)")
			break
		}

		b.WriteString("\nCaused by: ")
		b.WriteString(ownMessage(cause))
		if e, ok := cause.(*Exception); ok && len(e.stackTrace) > 0 {
			top := e.stackTrace[0]
			fmt.Fprintf(&b, "\n\tat %s (%s:%d)", top.Function, top.File, top.Line)
		}

		cause = errors.Unwrap(cause)
	}

	return b.String()
}

// ownMessage returns the text an error adds on top of its cause
func ownMessage(err error) string {
	if e, ok := err.(*Exception); ok {
		if e.message == "" {
			return e.kind.String()
		}
		return e.message
	}

	text := err.Error()
	if inner := errors.Unwrap(err); inner != nil {
		// fmt.Errorf("context: %w", inner) style wrappers repeat the inner text
		text = strings.TrimSuffix(text, ": "+inner.Error())
	}
	return text
}

// Report logs err at ERROR level. Exceptions are logged under their kind name;
// other errors under the logger's own context. A nil logger or error is a no-op.
func Report(logger *cmnlog.Logger, err error) {
	if logger == nil || err == nil {
		return
	}

	target := logger
	var e *Exception
	if errors.As(err, &e) {
		target = logger.Named(e.kind.String())
	}

	target.Error("{}", Render(err))
}
