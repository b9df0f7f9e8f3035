package errors

import "net/http"

// Code represents an error code
type Code string

// Transport-level error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// Rules-engine error codes. These carry the derivation failures the spell,
// character, and currency engines surface to callers.
const (
	CodeInvalidAxisValue         Code = "INVALID_AXIS_VALUE"
	CodeCapExceeded              Code = "CAP_EXCEEDED"
	CodeUnsupportedCurrency      Code = "UNSUPPORTED_CURRENCY"
	CodeInvalidSublimationTarget Code = "INVALID_SUBLIMATION_TARGET"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the corresponding HTTP status code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeInvalidArgument, CodeInvalidAxisValue, CodeCapExceeded,
		CodeUnsupportedCurrency, CodeInvalidSublimationTarget:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists:
		return http.StatusConflict
	case CodeFailedPrecondition:
		return http.StatusPreconditionFailed
	case CodeInternal:
		return http.StatusInternalServerError
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
