package config

import (
	"os"

	"github.com/YaCodeDev/GoYaCodeDevTypes/valueparser"
	"github.com/YaCodeDev/GoYaCodeDevTypes/yalogger"
)

// GetEnv retrieves the value of an environment variable, parses it to the specified type T,
// and returns it. If the variable is not set or fails to parse, it returns a fallback value.
// T may be anything valueparser.ParseValue accepts, including date ranges and byte sizes.
//
// Example usage:
//
//	window := GetEnv("REPORT_WINDOW", yadaterange.MustParse("2020-01..2020-12"), false, log)
//	limit := GetEnv("UPLOAD_LIMIT", yabytes.MustParse("10Mi"), true, log)
//
// PANICS if the environment variable is required and not set.
func GetEnv[T any](
	key string,
	fallback T,
	required bool,
	log yalogger.Logger,
) T {
	safetyCheck(&log)

	log = log.WithField(KeyEnv, key)

	if value, exists := os.LookupEnv(key); exists {
		parsed, err := valueparser.ParseValue[T](value)
		if err == nil {
			return parsed
		}

		log.Errorf("Failed to parse environment variable %s: %v", key, err)
	}

	if required {
		log.Fatalf("Environment variable %s is required", key)
	}

	log.Warnf(
		"Environment variable %s is not set or failed to parse, using default value %v",
		key,
		fallback,
	)

	return fallback
}

// GetEnvArray retrieves the value of an environment variable, splits it by a specified separator, (default is ","),
// parses each part into the specified type T, and returns a slice of T.
// If the variable is not set, it returns a fallback value.
//
// Example usage:
//
//	separator := ";"
//	windows := GetEnvArray("BLACKOUT_WINDOWS", []yadaterange.DateRange{}, &separator, false, log)
//
// PANICS if the environment variable is required and not set.
func GetEnvArray[T any](
	key string,
	fallback []T,
	separator *string,
	required bool,
	log yalogger.Logger,
) []T {
	safetyCheck(&log)

	log = log.WithField(KeyEnv, key)

	if value, exists := os.LookupEnv(key); exists {
		parsed, err := valueparser.ParseArray[T](value, separator)
		if err == nil {
			return parsed
		}

		log.Errorf("Failed to parse environment variable %s: %v", key, err)
	}

	if required {
		log.Fatalf("Environment variable %s is required", key)
	}

	log.Warnf("Environment variable %s is not set, using default value %v", key, fallback)

	return fallback
}
