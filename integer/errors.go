package integer

import (
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

var (
	// ErrDivisionByZero is returned by division and remainder when the
	// divisor is zero.
	ErrDivisionByZero = Error.New("division by zero")

	// ErrInvalidFormat is returned when a decimal string contains anything
	// other than an optional leading '-' followed by digits.
	ErrInvalidFormat = Error.New("invalid format")
)
