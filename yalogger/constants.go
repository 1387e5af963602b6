package yalogger

import "errors"

// Level mirrors logrus levels so it converts directly.
type Level uint32

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

// BaseLoggerType selects the logging backend.
type BaseLoggerType uint8

const (
	Logrus BaseLoggerType = iota
)

const (
	KeyRequestID = "request_id"

	DefaultTimestampFormat = "2006-01-02 15:04:05"
)

var ErrInvalidLogLevel = errors.New("invalid log level")
