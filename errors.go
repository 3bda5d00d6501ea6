package fixedpoint

import (
	"github.com/zeebo/errs"
)

var (
	// Error is the class of misuse errors: missing or mismatched formats and
	// malformed encodings.
	Error = errs.Class("fixedpoint")

	// OverflowError is returned when a result does not fit the integer bits
	// of its format.
	OverflowError = errs.Class("overflow")

	// DomainError is returned when an operation is undefined for its operand.
	DomainError = errs.Class("domain")
)

// ErrConsumed is returned when a Reciprocal is evaluated a second time.
var ErrConsumed = Error.New("reciprocal already consumed")

// fail reports err according to the failure mode.
func fail(err error) error {
	if FailFast {
		panic(err)
	}

	return err
}

// Must returns v or panics with err.
func Must(v Value, err error) Value {
	if err != nil {
		panic(err)
	}

	return v
}
