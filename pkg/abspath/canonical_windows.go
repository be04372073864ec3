package abspath

import (
	"os"

	"golang.org/x/sys/windows"

	"github.com/grovetools/selfpath/pkg/pathbuf"
)

func canonicalize(path string) (string, error) {
	src, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return "", err
	}

	work := make([]uint16, pathbuf.MaxPathLength)
	n, err := windows.GetFullPathName(src, uint32(len(work)), &work[0], nil)
	if err != nil {
		return "", os.NewSyscallError("GetFullPathName", err)
	}
	// On overflow n is the required size including the terminator.
	if n >= uint32(len(work)) {
		return "", errResultTooLong
	}
	return windows.UTF16ToString(work), nil
}
