package config

import (
	"strings"

	"github.com/YaCodeDev/GoYaCodeDevTypes/yalogger"
)

// safetyCheck replaces a nil logger with a default one and warns about it.
func safetyCheck(log *yalogger.Logger) {
	if *log == nil {
		*log = yalogger.NewBaseLogger(nil).NewLogger()

		(*log).Warn("Logger is nil, using default logger")
	}
}

// toScreamingSnakeCase converts a string to SCREAMING_SNAKE_CASE.
// For example, "ReportWindow" becomes "REPORT_WINDOW" and "HTTPTimeout" becomes "HTTP_TIMEOUT".
func toScreamingSnakeCase(s string) string {
	s = matchFirstCap.ReplaceAllString(s, "${1}_${2}")
	s = matchAllCap.ReplaceAllString(s, "${1}_${2}")

	return strings.ToUpper(s)
}
