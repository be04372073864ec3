//go:build unix

package process

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// abortExitCode is the status a shell reports for a process killed by SIGABRT.
const abortExitCode = 128 + int(unix.SIGABRT)

func abort() {
	// The Go runtime handles SIGABRT by dumping goroutines and exiting, so
	// deferred functions do not run.
	_ = unix.Kill(os.Getpid(), unix.SIGABRT)
	// Delivery is asynchronous, and the signal may be ignored by the host.
	time.Sleep(time.Second)
	os.Exit(abortExitCode)
}
