// File: checks.go
// Title: Precondition Checks
// Description: CheckArgument, CheckEmpty and CheckNotNull.
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.1.0: Initial implementation

package validation

import (
	cmnerror "github.com/msto63/commons/foundation/core/error"
)

// CheckArgument fails with message when condition is false
func CheckArgument(condition bool, message string) error {
	if !condition {
		return cmnerror.IllegalArgument(message)
	}
	return nil
}

// CheckEmpty fails when value is nil or an empty string. Other values,
// including zero numbers, pass.
func CheckEmpty(value interface{}, message string) error {
	if IsNil(value) {
		return cmnerror.IllegalArgument(message)
	}

	switch v := value.(type) {
	case string:
		return CheckArgument(v != "", message)
	case *string:
		return CheckArgument(*v != "", message)
	}
	return nil
}

// CheckNotNull fails only when value is nil. Empty strings and zero values pass.
func CheckNotNull(value interface{}, message string) error {
	return CheckArgument(!IsNil(value), message)
}
