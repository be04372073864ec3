package errors

import "fmt"

// BufferTooSmall creates an error for an executable path that does not fit the caller's buffer
func BufferTooSmall(capacity int) *SelfPathError {
	return New(ErrCodeBufferTooSmall,
		fmt.Sprintf("executable path does not fit in a %d byte buffer", capacity)).
		WithDetail("capacity", capacity)
}

// General creates an OS-level failure error
func General(op string, err error) *SelfPathError {
	return Wrap(err, ErrCodeGeneral, fmt.Sprintf("%s failed", op)).
		WithDetail("op", op)
}

// AbsoluteResolutionFailed creates an error for a path that could not be canonicalized
func AbsoluteResolutionFailed(path string, err error) *SelfPathError {
	return Wrap(err, ErrCodeAbsoluteResolutionFailed,
		fmt.Sprintf("cannot resolve absolute path for %q", path)).
		WithDetail("path", path)
}

// PathTooLong creates an error for a path exceeding the platform limit
func PathTooLong(path string, limit int) *SelfPathError {
	return New(ErrCodePathTooLong,
		fmt.Sprintf("path is %d bytes, limit is %d", len(path), limit)).
		WithDetail("length", len(path)).
		WithDetail("limit", limit)
}

// InvalidInput creates an invalid input error
func InvalidInput(reason string) *SelfPathError {
	return New(ErrCodeInvalidInput, fmt.Sprintf("invalid input: %s", reason))
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *SelfPathError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *SelfPathError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}
