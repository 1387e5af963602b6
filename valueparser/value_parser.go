package valueparser

import (
	"encoding"
	"fmt"
	"net/http"
	"reflect"
	"strconv"

	"github.com/YaCodeDev/GoYaCodeDevTypes/yaerrors"
)

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// ParseValue converts a string to T.
//
// Any T whose pointer implements encoding.TextUnmarshaler is parsed through
// it, which covers yadate.Date, yadaterange.DateRange, yabytes.Bytes and
// yalogger.Level. Otherwise T must be a string, bool, integer or float kind
// (named types such as time.Month included).
//
// Example usage:
//
//	size, err := valueparser.ParseValue[yabytes.Bytes]("512Mi")
//	if err != nil {
//		// Handle error
//	}
func ParseValue[T any](value string) (T, yaerrors.Error) {
	var zero T

	parsed, err := ParseValueOfType(value, reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}

	result, ok := parsed.Interface().(T)
	if !ok {
		return zero, yaerrors.FromError(
			http.StatusInternalServerError,
			ErrUnsupportedType,
			fmt.Sprintf("parse value: got %s, want %T", parsed.Type(), zero),
		)
	}

	return result, nil
}

// ParseValueOfType is ParseValue for a type only known at run time.
// The returned value has type valueType.
func ParseValueOfType(value string, valueType reflect.Type) (reflect.Value, yaerrors.Error) {
	ptr := reflect.New(valueType)

	if valueType.Kind() != reflect.Pointer && ptr.Type().Implements(textUnmarshalerType) {
		unmarshaler, _ := ptr.Interface().(encoding.TextUnmarshaler)

		if err := unmarshaler.UnmarshalText([]byte(value)); err != nil {
			return reflect.Value{}, yaerrors.FromError(
				http.StatusBadRequest,
				fmt.Errorf("%w: %w", ErrUnparsableValue, err),
				fmt.Sprintf("parse value %q as %s", value, valueType),
			)
		}

		return ptr.Elem(), nil
	}

	target := ptr.Elem()

	var err error

	switch valueType.Kind() {
	case reflect.String:
		target.SetString(value)

	case reflect.Bool:
		var parsed bool
		if parsed, err = strconv.ParseBool(value); err == nil {
			target.SetBool(parsed)
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var parsed int64
		if parsed, err = strconv.ParseInt(value, 10, valueType.Bits()); err == nil {
			target.SetInt(parsed)
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var parsed uint64
		if parsed, err = strconv.ParseUint(value, 10, valueType.Bits()); err == nil {
			target.SetUint(parsed)
		}

	case reflect.Float32, reflect.Float64:
		var parsed float64
		if parsed, err = strconv.ParseFloat(value, valueType.Bits()); err == nil {
			target.SetFloat(parsed)
		}

	default:
		return reflect.Value{}, yaerrors.FromError(
			http.StatusInternalServerError,
			ErrUnsupportedType,
			"parse value: unsupported type "+valueType.String(),
		)
	}

	if err != nil {
		return reflect.Value{}, yaerrors.FromError(
			http.StatusBadRequest,
			fmt.Errorf("%w: %w", ErrUnparsableValue, err),
			fmt.Sprintf("parse value %q as %s", value, valueType),
		)
	}

	return target, nil
}
