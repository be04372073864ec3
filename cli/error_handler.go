package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/selfpath/errors"
	"github.com/grovetools/selfpath/theme"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message for err based on its code and returns err unchanged.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	t := theme.DefaultTheme
	prefix := t.Error.Render("Error:")

	spErr := asSelfPathError(err)
	switch errors.GetCode(err) {
	case errors.ErrCodeBufferTooSmall:
		fmt.Fprintf(h.Out, "%s the executable path does not fit in %v bytes\n", prefix, spErr.Details["capacity"])
		fmt.Fprintln(h.Out, t.Muted.Render("Retry with a larger --buffer-size."))

	case errors.ErrCodeGeneral:
		fmt.Fprintf(h.Out, "%s the operating system could not report the executable path: %v\n", prefix, spErr.Cause)

	case errors.ErrCodeAbsoluteResolutionFailed:
		fmt.Fprintf(h.Out, "%s %s\n", prefix, spErr.Message)
		fmt.Fprintln(h.Out, t.Muted.Render("On Unix systems every component of the path must exist."))

	case errors.ErrCodePathTooLong:
		fmt.Fprintf(h.Out, "%s path exceeds the %v byte limit\n", prefix, spErr.Details["limit"])

	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "%s configuration file not found: %v\n", prefix, spErr.Details["path"])

	case errors.ErrCodeConfigInvalid:
		fmt.Fprintf(h.Out, "%s %v\n", prefix, err)

	default:
		fmt.Fprintf(h.Out, "%s %v\n", prefix, err)
	}

	if h.Verbose && spErr != nil {
		fmt.Fprintf(h.Out, "\nError details:\n%s\n", spErr.ToJSON())
	}
	return err
}

func asSelfPathError(err error) *errors.SelfPathError {
	for err != nil {
		if spErr, ok := err.(*errors.SelfPathError); ok {
			return spErr
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil
		}
		err = unwrapper.Unwrap()
	}
	return nil
}
