// Package abspath converts possibly-relative paths to their canonical absolute
// form using the platform's canonicalization primitive.
//
// On Unix the primitive has realpath semantics: symlinks are evaluated and the
// target must exist. On Windows it is GetFullPathNameW, which is purely lexical
// and does not require the target to exist.
package abspath

import (
	stderrors "errors"
	"strings"

	"github.com/grovetools/selfpath/errors"
	"github.com/grovetools/selfpath/pkg/pathbuf"
)

// errResultTooLong is returned by canonicalize when the canonical form does
// not fit the bounded output buffer.
var errResultTooLong = stderrors.New("canonical path exceeds the platform limit")

// ToAbsolute returns the canonical absolute form of path, or the absent value
// if it cannot be resolved. The empty path resolves to the working directory.
func ToAbsolute(path string) pathbuf.Optional {
	abs, err := Resolve(path)
	if err != nil {
		return pathbuf.None()
	}
	return pathbuf.Some(abs)
}

// Resolve is ToAbsolute with the reason for failure. Inputs that do not fit
// pathbuf.MaxPathLength are rejected with PATH_TOO_LONG rather than truncated.
func Resolve(path string) (string, error) {
	if !pathbuf.Fits(path) {
		return "", errors.PathTooLong(path, pathbuf.MaxPathLength)
	}
	if strings.IndexByte(path, 0) >= 0 {
		return "", errors.InvalidInput("path contains a NUL byte").WithDetail("path", path)
	}

	src := path
	if src == "" {
		src = "."
	}

	abs, err := canonicalize(src)
	if stderrors.Is(err, errResultTooLong) {
		return "", errors.Wrap(err, errors.ErrCodePathTooLong, "canonical path is too long").
			WithDetail("path", path).
			WithDetail("limit", pathbuf.MaxPathLength)
	}
	if err != nil {
		return "", errors.AbsoluteResolutionFailed(path, err)
	}
	if !pathbuf.Fits(abs) {
		return "", errors.PathTooLong(abs, pathbuf.MaxPathLength).WithDetail("path", path)
	}
	return abs, nil
}
