package process

import "os"

// abortExitCode matches the exit status of abort() in the Microsoft C runtime.
const abortExitCode = 3

func abort() {
	os.Exit(abortExitCode)
}
