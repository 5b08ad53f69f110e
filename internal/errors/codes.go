package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"

	// CodePlaceholderDataMissing means a $placeholder$ indexed a record list
	// that had no entry at the requested slot
	CodePlaceholderDataMissing Code = "PLACEHOLDER_DATA_MISSING"

	// CodeMalformedCurve means a curve's breakpoints cannot be interpolated,
	// e.g. two adjacent breakpoints share a level
	CodeMalformedCurve Code = "MALFORMED_CURVE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsDataFault reports whether the code describes bad source data rather than
// a caller or infrastructure problem
func (c Code) IsDataFault() bool {
	return c == CodePlaceholderDataMissing || c == CodeMalformedCurve
}
