package yaerrors

import "errors"

// ErrTeapot is reported when a method is called on a nil error, because
// the backend developer is a teapot.
var ErrTeapot = errors.New("backend developer is a teapot")
