// File: predicates.go
// Title: Validation Predicates
// Description: Nil and emptiness tests plus the email format check.
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.1.0: Initial implementation

package validation

import (
	"reflect"
	"regexp"
	"strings"
)

// emailPattern accepts a dotted or quoted local part and either a bracketed IPv4
// literal or a domain with a TLD of two or more letters.
var emailPattern = regexp.MustCompile(`^(([^<>()[\]\\.,;:\s@"]+(\.[^<>()[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

// IsNil reports whether value is nil, including typed nil pointers, maps,
// slices, channels, functions and interfaces.
func IsNil(value interface{}) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// IsEmpty reports whether value is nil, the zero value of its type, or a
// string, slice, array, map or channel of length zero.
func IsEmpty(value interface{}) bool {
	if IsNil(value) {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() == 0
	default:
		return rv.IsZero()
	}
}

// IsValidEmail checks the lower-cased address against a fixed pattern.
// An empty address is invalid.
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	return emailPattern.MatchString(strings.ToLower(email))
}
