// File: hashcode.go
// Title: Hash Codes
// Description: Java style hash codes for strings, numbers and booleans.
// Version: v0.1.0
// Created: 2026-09-30
// Modified: 2026-09-30
//
// Change History:
// - 2026-09-30 v0.1.0: Initial implementation

package hashx

import (
	"fmt"
	"reflect"
	"unicode/utf16"

	cmnerror "github.com/msto63/commons/foundation/core/error"
)

// Boolean hash codes
const (
	HashCodeTrue  = 1231
	HashCodeFalse = 1237
)

// StringHashCode computes h = h*31 + c over the UTF-16 code units of s, taking
// them from last to first, with 32-bit wraparound. The empty string hashes to 0.
func StringHashCode(s string) int32 {
	var h int32
	units := utf16.Encode([]rune(s))
	for i := len(units) - 1; i >= 0; i-- {
		h = (h << 5) - h + int32(units[i])
	}
	return h
}

// HashCode returns the hash code of a string, number or boolean. Numbers are
// returned unchanged; any other type is an IllegalArgument.
func HashCode(input interface{}) (float64, error) {
	switch v := input.(type) {
	case string:
		return float64(StringHashCode(v)), nil
	case bool:
		if v {
			return HashCodeTrue, nil
		}
		return HashCodeFalse, nil
	case nil:
		return 0, cmnerror.IllegalArgument("unsupported type nil")
	}

	rv := reflect.ValueOf(input)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		return float64(StringHashCode(rv.String())), nil
	case reflect.Bool:
		return HashCode(rv.Bool())
	default:
		return 0, cmnerror.IllegalArgument(fmt.Sprintf("unsupported type %T", input))
	}
}
