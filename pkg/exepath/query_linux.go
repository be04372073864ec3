package exepath

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/grovetools/selfpath/pkg/pathbuf"
)

const procSelfExe = "/proc/self/exe"

func platformQuery() (string, bool, error) {
	work := make([]byte, pathbuf.MaxPathLength)
	n, err := unix.Readlink(procSelfExe, work)
	if err != nil {
		return "", false, &os.PathError{Op: "readlink", Path: procSelfExe, Err: err}
	}
	// readlink silently truncates; a full buffer means the link may be longer.
	if n == len(work) {
		return "", true, unix.ENAMETOOLONG
	}
	return string(work[:n]), false, nil
}
