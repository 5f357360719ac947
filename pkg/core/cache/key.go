package cache

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	cmnerror "github.com/msto63/commons/foundation/core/error"
	cmnvalidation "github.com/msto63/commons/foundation/core/validation"
)

// keyFailure marks an unexpected failure while building a key
type keyFailure struct {
	cause error
}

func (f *keyFailure) Error() string {
	return "build cache key: " + f.cause.Error()
}

func (f *keyFailure) Unwrap() error {
	return f.cause
}

// buildKey returns type + Separator + key. Panics raised while rendering
// the key are recovered into a keyFailure.
func (m *Manager) buildKey(typ string, key interface{}) (cacheKey string, err error) {
	if err := cmnvalidation.CheckEmpty(key, "Cache key cannot be empty."); err != nil {
		return "", err
	}

	defer func() {
		if r := recover(); r != nil {
			cacheKey = ""
			err = &keyFailure{cause: fmt.Errorf("%v", r)}
		}
	}()

	s, err := m.stringifyKey(key)
	if err != nil {
		return "", err
	}
	return typ + Separator + s, nil
}

func (m *Manager) stringifyKey(key interface{}) (string, error) {
	switch k := key.(type) {
	case string:
		return k, nil
	case fmt.Stringer:
		return k.String(), nil
	}

	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	}

	if !m.jsonKeys {
		return "", cmnerror.IllegalArgument(fmt.Sprintf("unsupported cache key type %T", key))
	}

	data, err := json.Marshal(key)
	if err != nil {
		return "", &keyFailure{cause: err}
	}
	m.logger.Warn("Consider using a string, or a type with a String() method, as cache key.")
	return string(data), nil
}
