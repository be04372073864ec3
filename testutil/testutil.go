package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ChildEnv is set in the environment of processes started by RunChild.
const ChildEnv = "SELFPATH_TEST_CHILD"

// RealTempDir returns t.TempDir() with symlinks resolved, so it compares
// equal to paths canonicalized by the OS (e.g. /var -> /private/var on macOS).
func RealTempDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

// MkdirAll creates dir under root and returns its full path.
func MkdirAll(t *testing.T, root string, elem ...string) string {
	t.Helper()

	dir := filepath.Join(append([]string{root}, elem...)...)
	require.NoError(t, os.MkdirAll(dir, 0755))
	return dir
}

// IsChild reports whether the current test binary was started by RunChild
// for the named test.
func IsChild(name string) bool {
	return os.Getenv(ChildEnv) == name
}

// RunChild re-executes the test binary, running only the named test with
// ChildEnv set, and returns the combined output and the finished command's error.
func RunChild(t *testing.T, name string) ([]byte, error) {
	t.Helper()

	exe, err := os.Executable()
	require.NoError(t, err)

	cmd := exec.Command(exe, "-test.run=^"+name+"$", "-test.count=1")
	cmd.Env = append(os.Environ(), ChildEnv+"="+name)
	return cmd.CombinedOutput()
}
