package univalue

import "errors"

// Error codes (exported consts for matching without comparing message text).
const (
	CodeInvalidType = "invalid_type"
	CodeOutOfRange  = "out_of_range"
)

// Error reports a failed typed access. Code distinguishes kind mismatches
// from numeric range/format failures; Message carries the human-readable
// text. Numeric accessors do not distinguish malformed text from legitimate
// but oversized values: both surface as CodeOutOfRange.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// AsError extracts an *Error from an error using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var ue *Error
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// Accessor errors. One distinct message per expected category; callers may
// match on message text, so the wording is stable.
var (
	errNotObject        = &Error{Code: CodeInvalidType, Message: "JSON value is not an object as expected"}
	errNotObjectOrArray = &Error{Code: CodeInvalidType, Message: "JSON value is not an object or array as expected"}
	errNotBool          = &Error{Code: CodeInvalidType, Message: "JSON value is not a boolean as expected"}
	errNotString        = &Error{Code: CodeInvalidType, Message: "JSON value is not a string as expected"}
	errNotInteger       = &Error{Code: CodeInvalidType, Message: "JSON value is not an integer as expected"}
	errNotNumber        = &Error{Code: CodeInvalidType, Message: "JSON value is not a number as expected"}
	errNotArray         = &Error{Code: CodeInvalidType, Message: "JSON value is not an array as expected"}

	errIntOutOfRange    = &Error{Code: CodeOutOfRange, Message: "JSON integer out of range"}
	errDoubleOutOfRange = &Error{Code: CodeOutOfRange, Message: "JSON double out of range"}
)
