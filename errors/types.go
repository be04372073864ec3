package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Executable path errors
	ErrCodeBufferTooSmall ErrorCode = "BUFFER_TOO_SMALL"
	ErrCodeGeneral        ErrorCode = "GENERAL_ERROR"

	// Absolute path errors
	ErrCodeAbsoluteResolutionFailed ErrorCode = "ABSOLUTE_RESOLUTION_FAILED"
	ErrCodePathTooLong              ErrorCode = "PATH_TOO_LONG"

	// Configuration errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// SelfPathError represents a structured error with context
type SelfPathError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *SelfPathError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SelfPathError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *SelfPathError) WithDetail(key string, value interface{}) *SelfPathError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *SelfPathError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new SelfPathError
func New(code ErrorCode, message string) *SelfPathError {
	return &SelfPathError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a SelfPathError
func Wrap(err error, code ErrorCode, message string) *SelfPathError {
	return &SelfPathError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is reports whether any error in err's chain is a SelfPathError with the given code.
func Is(err error, code ErrorCode) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the code of the first SelfPathError in err's chain.
func GetCode(err error) ErrorCode {
	for err != nil {
		if spErr, ok := err.(*SelfPathError); ok {
			return spErr.Code
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = unwrapper.Unwrap()
	}
	return ""
}
