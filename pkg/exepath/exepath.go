// Package exepath locates the image of the running process on disk and writes
// it, UTF-8 encoded and NUL terminated, into a caller-owned bounded buffer.
//
// Failures are reported through Result.Status and never logged or treated as
// fatal. When Status is not Success the buffer contents are undefined.
package exepath

import (
	stderrors "errors"
	"path/filepath"
	"unicode/utf8"

	"github.com/grovetools/selfpath/errors"
	"github.com/grovetools/selfpath/pkg/pathbuf"
)

// Status is the outcome of an executable path query.
type Status int

const (
	// Success means the path was written to the buffer.
	Success Status = iota
	// BufferTooSmall means the path plus terminator did not fit, or the OS
	// truncated the path in its own working buffer. Retry with a larger buffer.
	BufferTooSmall
	// GeneralError means the OS query failed.
	GeneralError
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case BufferTooSmall:
		return "buffer too small"
	case GeneralError:
		return "general error"
	default:
		return "unknown"
	}
}

// Result is the outcome of Resolve or ResolveDirectory.
type Result struct {
	Status Status
	// PathIncludesFilename is true when the written path names the executable
	// itself and false when it names only the containing directory.
	PathIncludesFilename bool
	// Err is the underlying OS error, when one was observed.
	Err error
}

// OK reports whether the path was stored.
func (r Result) OK() bool {
	return r.Status == Success
}

// Query asks the OS for the path of the running image. truncated reports that
// the path did not fit the query's own pathbuf.MaxPathLength working buffer.
type Query func() (path string, truncated bool, err error)

var errEmptyImagePath = stderrors.New("empty executable image path")

// Resolver resolves the executable path using a Query.
type Resolver struct {
	query Query
}

// NewResolver returns a Resolver backed by query.
func NewResolver(query Query) *Resolver {
	return &Resolver{query: query}
}

var platform = NewResolver(platformQuery)

// Resolve writes the absolute path of the running executable into buf.
func Resolve(buf pathbuf.Buffer) Result {
	return platform.Resolve(buf)
}

// ResolveDirectory writes the directory containing the running executable into buf.
func ResolveDirectory(buf pathbuf.Buffer) Result {
	return platform.ResolveDirectory(buf)
}

// Executable returns the absolute path of the running executable.
func Executable() (string, error) {
	return platform.Executable()
}

// Resolve writes the image path into buf. A zero-capacity buffer always
// yields BufferTooSmall without querying the OS.
func (r *Resolver) Resolve(buf pathbuf.Buffer) Result {
	return r.store(buf, true)
}

// ResolveDirectory writes the directory of the image path into buf.
func (r *Resolver) ResolveDirectory(buf pathbuf.Buffer) Result {
	return r.store(buf, false)
}

// Executable resolves into a buffer large enough for any path the platform
// query can return and converts failures to coded errors.
func (r *Resolver) Executable() (string, error) {
	buf := pathbuf.New(utf8.UTFMax*pathbuf.MaxPathLength + 1)
	res := r.Resolve(buf)
	switch res.Status {
	case Success:
		return buf.String(), nil
	case BufferTooSmall:
		spErr := errors.BufferTooSmall(buf.Capacity())
		spErr.Cause = res.Err
		return "", spErr
	default:
		return "", errors.General("executable path query", res.Err)
	}
}

func (r *Resolver) store(buf pathbuf.Buffer, includeFilename bool) Result {
	result := Result{PathIncludesFilename: includeFilename}
	if buf.Capacity() == 0 {
		result.Status = BufferTooSmall
		return result
	}

	path, truncated, err := r.query()
	switch {
	case truncated:
		result.Status = BufferTooSmall
		result.Err = err
		return result
	case path == "":
		if err == nil {
			err = errEmptyImagePath
		}
		result.Status = GeneralError
		result.Err = err
		return result
	}

	if !includeFilename {
		path = filepath.Dir(path)
	}

	// len(path) is the UTF-8 length; the terminator needs one more byte.
	if !buf.Store(path) {
		result.Status = BufferTooSmall
		return result
	}
	result.Status = Success
	return result
}
