package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// Type checking helpers

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsInvalidAxisValue checks if an error came from an axis table miss
func IsInvalidAxisValue(err error) bool {
	return GetCode(err) == CodeInvalidAxisValue
}

// IsCapExceeded checks if an error came from a level-cap violation
func IsCapExceeded(err error) bool {
	return GetCode(err) == CodeCapExceeded
}

// IsUnsupportedCurrency checks if an error came from an unknown currency
func IsUnsupportedCurrency(err error) bool {
	return GetCode(err) == CodeUnsupportedCurrency
}

// IsInvalidSublimationTarget checks if an error came from a sublimation
// naming a missing skill
func IsInvalidSublimationTarget(err error) bool {
	return GetCode(err) == CodeInvalidSublimationTarget
}
