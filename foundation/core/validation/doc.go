// Package validation provides argument checks that fail with IllegalArgument
// exceptions.
//
// Package: validation
// Title: commons Argument Validation
// Description: Stateless precondition helpers. The Check* functions return a
//              *cmnerror.Exception of kind IllegalArgument when the condition is
//              not met and nil otherwise; the Is* predicates never fail.
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Usage:
//
//	import cmnvalidation "github.com/msto63/commons/foundation/core/validation"
//
//	if err := cmnvalidation.CheckEmpty(name, "name cannot be empty."); err != nil {
//	    return err
//	}
//	if !cmnvalidation.IsValidEmail(address) {
//	    return cmnerror.InvalidParameter("invalid email")
//	}
package validation
