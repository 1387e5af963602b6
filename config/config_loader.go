// Package config loads typed configuration from environment variables.
//
// Values are parsed by valueparser, so besides strings, numbers and booleans
// any type that implements encoding.TextUnmarshaler works out of the box:
// yadate.Date, yadaterange.DateRange, yabytes.Bytes, yalogger.Level.
package config

import (
	"encoding"
	"fmt"
	"net/http"
	"os"
	"reflect"

	"github.com/YaCodeDev/GoYaCodeDevTypes/valueparser"
	"github.com/YaCodeDev/GoYaCodeDevTypes/yaerrors"
	"github.com/YaCodeDev/GoYaCodeDevTypes/yalogger"
	"github.com/google/uuid"
)

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// LoadConfigStructFromEnv loads environment variables into a struct.
// It uses the field names of the struct as keys to look up values in the environment.
// The keys are converted to SCREAMING_SNAKE_CASE; fields of nested structs are
// prefixed with the parent key.
// A field already holding a value keeps it when the variable is not set; otherwise
// the `default` tag is used. A zero field with neither is required.
// Slices are split on the `separator` tag, "," when absent.
//
// This is a wrapper around LoadConfigStructFromEnvHandlingError that exits on error.
//
// Example usage:
//
//	type Limits struct {
//		Upload yabytes.Bytes `default:"10Mi"`
//	}
//
//	type Config struct {
//		Limits    Limits
//		Window    yadaterange.DateRange   `default:"2020-01..2020-12"`
//		Blackouts []yadaterange.DateRange `default:"2020-12-24..2020-12-26" separator:";"`
//		LogLevel  yalogger.Level          `default:"info"`
//	}
//
//	var cfg Config
//
//	config.LoadConfigStructFromEnv(&cfg, log) // reads LIMITS_UPLOAD, WINDOW, BLACKOUTS, LOG_LEVEL
func LoadConfigStructFromEnv[T any](instance *T, log yalogger.Logger) {
	safetyCheck(&log)

	err := LoadConfigStructFromEnvHandlingError(instance, log)
	if err != nil {
		log.Fatalf("Failed to load config struct from env: %v", err)
	}
}

// LoadConfigStructFromEnvHandlingError is LoadConfigStructFromEnv returning
// the error instead of exiting.
//
// Example usage:
//
//	var cfg Config
//
//	if err := config.LoadConfigStructFromEnvHandlingError(&cfg, log); err != nil {
//		// handle error
//	}
func LoadConfigStructFromEnvHandlingError[T any](instance *T, log yalogger.Logger) yaerrors.Error {
	safetyCheck(&log)

	log = log.WithRequestUUID(uuid.New())

	if instance == nil || reflect.TypeFor[T]().Kind() != reflect.Struct {
		return yaerrors.FromErrorWithLog(
			http.StatusInternalServerError,
			ErrConfigStructMustBeStruct,
			fmt.Sprintf(
				"config loader, got %T",
				instance,
			),
			log,
		)
	}

	return loadConfigStructFromEnv(reflect.ValueOf(instance).Elem(), "", log)
}

// loadConfigStructFromEnv does the actual work of LoadConfigStructFromEnv,
// recursing into nested structs.
func loadConfigStructFromEnv(
	structValue reflect.Value,
	keyPath string,
	log yalogger.Logger,
) yaerrors.Error {
	structType := structValue.Type()

	for i := range structValue.NumField() {
		field := structType.Field(i)
		fieldVal := structValue.Field(i)

		if !fieldVal.CanSet() {
			log.Warnf("Field %s cannot be set", field.Name)

			continue
		}

		envKey := toScreamingSnakeCase(field.Name)

		if keyPath != "" {
			envKey = fmt.Sprintf(
				"%s_%s",
				keyPath,
				envKey,
			)
		}

		if field.Type.Kind() == reflect.Struct && !isTextUnmarshaler(field.Type) {
			if err := loadConfigStructFromEnv(fieldVal, envKey, log); err != nil {
				return err.WrapWithLog(
					"failed to load struct field "+field.Name,
					log,
				)
			}

			continue
		}

		if err := loadField(field, fieldVal, envKey, log); err != nil {
			return err.WrapWithLog(
				fmt.Sprintf("config loader: field %s", field.Name),
				log,
			)
		}
	}

	return nil
}

// loadField sets one non-struct field from envKey, the default tag, or its
// current value, in that order of preference.
func loadField(
	field reflect.StructField,
	fieldVal reflect.Value,
	envKey string,
	log yalogger.Logger,
) yaerrors.Error {
	fieldLog := log.WithField(KeyEnv, envKey)

	raw, exists := os.LookupEnv(envKey)
	if !exists {
		if !fieldVal.IsZero() {
			return nil
		}

		defaultValStr, hasDefault := field.Tag.Lookup(DefaultTagName)
		if !hasDefault || defaultValStr == "" {
			return yaerrors.FromError(
				http.StatusInternalServerError,
				ErrValueIsRequired,
				fmt.Sprintf("environment variable %s is required", envKey),
			)
		}

		fieldLog.Debugf("Environment variable %s is not set, using default %q", envKey, defaultValStr)

		raw = defaultValStr
	}

	parsed, err := parseField(field, raw)
	if err != nil {
		return err
	}

	fieldVal.Set(parsed)

	return nil
}

func parseField(field reflect.StructField, raw string) (reflect.Value, yaerrors.Error) {
	if field.Type.Kind() == reflect.Slice && !isTextUnmarshaler(field.Type) {
		var separator *string

		if tag, ok := field.Tag.Lookup(SeparatorTagName); ok {
			separator = &tag
		}

		parsed, err := valueparser.ParseArrayOfType(raw, separator, field.Type.Elem())
		if err != nil {
			return reflect.Value{}, err
		}

		return parsed.Convert(field.Type), nil
	}

	return valueparser.ParseValueOfType(raw, field.Type)
}

func isTextUnmarshaler(typ reflect.Type) bool {
	return reflect.PointerTo(typ).Implements(textUnmarshalerType)
}
