//go:build !unix && !windows

package process

import "os"

// abortExitCode mirrors the status a POSIX shell reports for SIGABRT.
const abortExitCode = 134

func abort() {
	os.Exit(abortExitCode)
}
