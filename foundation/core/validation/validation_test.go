// File: validation_test.go
// Title: Validation Tests
// Description: Tests for the precondition checks and predicates.
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.1.0: Initial tests

package validation

import (
	"errors"
	"testing"

	cmnerror "github.com/msto63/commons/foundation/core/error"
)

func TestCheckArgument(t *testing.T) {
	if err := CheckArgument(true, "unused"); err != nil {
		t.Errorf("CheckArgument(true) = %v, want nil", err)
	}

	err := CheckArgument(false, "count must be positive")
	if err == nil {
		t.Fatal("CheckArgument(false) = nil, want error")
	}
	if !errors.Is(err, cmnerror.ErrIllegalArgument) {
		t.Errorf("CheckArgument(false) kind = %v, want IllegalArgument", err)
	}
	if err.Error() != "count must be positive" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestCheckEmpty(t *testing.T) {
	var nilString *string
	empty := ""
	filled := "x"

	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"string", "value", false},
		{"nil string pointer", nilString, true},
		{"empty string pointer", &empty, true},
		{"string pointer", &filled, false},
		{"zero int", 0, false},
		{"false", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckEmpty(tt.value, "value cannot be empty.")
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckEmpty(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestCheckNotNull(t *testing.T) {
	var nilMap map[string]int
	var nilPtr *int

	tests := []struct {
		name    string
		value   interface{}
		wantErr bool
	}{
		{"nil", nil, true},
		{"typed nil map", nilMap, true},
		{"typed nil pointer", nilPtr, true},
		{"empty string", "", false},
		{"zero", 0, false},
		{"struct", struct{}{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckNotNull(tt.value, "value cannot be null.")
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckNotNull(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"string", "a", false},
		{"zero", 0, true},
		{"number", 3.14, false},
		{"false", false, true},
		{"true", true, false},
		{"empty slice", []int{}, true},
		{"slice", []int{1}, false},
		{"empty map", map[string]int{}, true},
		{"zero struct", struct{ A int }{}, true},
		{"struct", struct{ A int }{A: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmpty(tt.value); got != tt.want {
				t.Errorf("IsEmpty(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"First.Last@Example.ORG", true},
		{"user+tag@sub.domain.io", true},
		{`"quoted local"@example.com`, true},
		{"user@[192.168.0.1]", true},
		{"", false},
		{"plainaddress", false},
		{"user@localhost", false},
		{"user@example.c", false},
		{"user..dots@example.com", false},
		{"user name@example.com", false},
		{"@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}
