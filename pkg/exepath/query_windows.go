package exepath

import (
	"os"

	"golang.org/x/sys/windows"

	"github.com/grovetools/selfpath/pkg/pathbuf"
)

func platformQuery() (string, bool, error) {
	work := make([]uint16, pathbuf.MaxPathLength)
	n, err := windows.GetModuleFileName(0, &work[0], uint32(len(work)))
	// The wrapper only surfaces the last error when the call returns zero, so a
	// result filling the whole buffer is the ERROR_INSUFFICIENT_BUFFER case.
	if n == uint32(len(work)) {
		return "", true, windows.ERROR_INSUFFICIENT_BUFFER
	}
	if n == 0 && err != nil {
		return "", false, os.NewSyscallError("GetModuleFileName", err)
	}
	return windows.UTF16ToString(work[:n]), false, nil
}
