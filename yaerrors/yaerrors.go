// Package yaerrors provides the coded error type returned by every fallible
// call in GoYaCodeDevTypes.
//
// An Error carries an HTTP-like status code, the original cause (reachable
// through errors.Is / errors.As) and a human readable traceback that grows
// each time the error is wrapped on its way up the call stack.
//
// Example usage:
//
//	date, err := yadate.Parse("2020-13-01")
//	if err != nil {
//		return err.Wrap("load report window")
//	}
package yaerrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/YaCodeDev/GoYaCodeDevTypes/yalogger"
)

// Error is an error with a status code and a traceback.
type Error interface {
	error
	Wrap(msg string) Error
	WrapWithLog(msg string, log yalogger.Logger) Error
	Code() int
	Unwrap() error
	UnwrapLastError() string
}

const (
	codeSeparate  = " | "
	errorSeparate = " -> "
)

type yaError struct {
	code      int
	cause     error
	traceback string
}

// FromError wraps an existing error with a code and a context message.
//
// Example usage:
//
//	return yaerrors.FromError(http.StatusBadRequest, ErrInvalidDate, "parse date: "+value)
func FromError(code int, cause error, wrap string) Error {
	return &yaError{
		code:      code,
		cause:     cause,
		traceback: fmt.Sprintf("%s: %v", wrap, cause),
	}
}

// FromErrorWithLog is FromError that also logs the resulting message.
func FromErrorWithLog(code int, cause error, wrap string, log yalogger.Logger) Error {
	err := FromError(code, cause, wrap)

	log.Error(err.(*yaError).traceback)

	return err
}

// FromString creates an error from a plain message.
func FromString(code int, msg string) Error {
	return &yaError{
		code:      code,
		cause:     errors.New(msg), //nolint:err113
		traceback: msg,
	}
}

// FromStringWithLog is FromString that also logs the message.
func FromStringWithLog(code int, msg string, log yalogger.Logger) Error {
	log.Error(msg)

	return FromString(code, msg)
}

// Error returns the code and the traceback, e.g. "400 | parse range -> parse date: invalid date".
func (e *yaError) Error() string {
	safetyCheck(&e)

	return fmt.Sprintf("%d%s%s", e.code, codeSeparate, e.traceback)
}

// Unwrap returns the original cause.
func (e *yaError) Unwrap() error {
	safetyCheck(&e)

	return e.cause
}

// UnwrapLastError returns the outermost message of the traceback.
func (e *yaError) UnwrapLastError() string {
	safetyCheck(&e)

	last, _, _ := strings.Cut(e.traceback, errorSeparate)

	return last
}

// Wrap returns a copy of the error with msg prepended to the traceback.
// Call it each time the error is handed to a higher level.
func (e *yaError) Wrap(msg string) Error {
	safetyCheck(&e)

	return &yaError{
		code:      e.code,
		cause:     e.cause,
		traceback: msg + errorSeparate + e.traceback,
	}
}

// WrapWithLog is Wrap that also logs msg.
func (e *yaError) WrapWithLog(msg string, log yalogger.Logger) Error {
	log.Error(msg)

	return e.Wrap(msg)
}

// Code returns the status code of the error.
func (e *yaError) Code() int {
	safetyCheck(&e)

	return e.code
}

// safetyCheck replaces a nil receiver with a teapot error so that methods
// called on a typed nil never dereference it.
func safetyCheck(err **yaError) {
	if *err == nil {
		*err = &yaError{
			code:      http.StatusTeapot,
			cause:     ErrTeapot,
			traceback: ErrTeapot.Error(),
		}
	}
}
