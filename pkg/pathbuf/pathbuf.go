// Package pathbuf holds the bounded path types shared by the resolvers: the
// caller-owned output buffer, the platform path limit used to size every
// working buffer, and the optional path outcome.
package pathbuf

import "bytes"

// MaxPathLength bounds every path handled by this module, in bytes for UTF-8
// results and in code units for native wide working buffers.
const MaxPathLength = 1024

// Fits reports whether s, plus a terminator, fits within MaxPathLength.
func Fits(s string) bool {
	return len(s) < MaxPathLength
}

// Buffer is a caller-owned, fixed-capacity output buffer. Its capacity is
// len(b). Resolvers write into it and never keep a reference after returning.
type Buffer []byte

// New allocates a zeroed buffer of the given capacity.
func New(capacity int) Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return make(Buffer, capacity)
}

// Capacity returns the number of bytes a resolver may write, terminator included.
func (b Buffer) Capacity() int {
	return len(b)
}

// String returns the contents up to the first NUL terminator.
func (b Buffer) String() string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}

// Store writes s followed by a NUL terminator. It reports false and leaves
// the buffer untouched if s plus the terminator does not fit.
func (b Buffer) Store(s string) bool {
	if len(s) >= len(b) {
		return false
	}
	n := copy(b, s)
	b[n] = 0
	return true
}
