// Package process provides the last-resort termination primitive for callers
// that treat unrecoverable application state as fatal. Nothing in this module
// calls it implicitly.
package process

// RequestAbnormalTermination ends the current process abnormally, the way the
// C runtime's abort does on this platform. It does not return.
func RequestAbnormalTermination() {
	abort()
}
