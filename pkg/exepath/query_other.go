//go:build !linux && !windows

package exepath

import (
	"os"

	"github.com/grovetools/selfpath/pkg/pathbuf"
)

func platformQuery() (string, bool, error) {
	path, err := os.Executable()
	if err != nil {
		return "", false, err
	}
	if len(path) >= pathbuf.MaxPathLength {
		return "", true, nil
	}
	return path, false, nil
}
