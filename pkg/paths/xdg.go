// Package paths provides XDG-compliant locations for selfpath's own files.
//
// Resolution order:
// 1. SELFPATH_HOME (portable root) → $SELFPATH_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/selfpath
// 3. Platform defaults → ~/.config/selfpath, ~/.local/state/selfpath
package paths

import (
	"os"
	"path/filepath"
)

const appName = "selfpath"

// baseDir resolves one XDG base directory. portable is the subdirectory used
// under SELFPATH_HOME, fallback the path under the home directory.
func baseDir(portable, xdgEnv string, fallback ...string) string {
	if home := os.Getenv("SELFPATH_HOME"); home != "" {
		return filepath.Join(home, portable)
	}
	if dir := os.Getenv(xdgEnv); dir != "" {
		return filepath.Join(dir, appName)
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(append(append([]string{homeDir}, fallback...), appName)...)
	}
	return ""
}

// ConfigDir returns the user configuration directory searched for
// selfpath.yml after the working directory and its parents.
func ConfigDir() string {
	return baseDir("config", "XDG_CONFIG_HOME", ".config")
}

// StateDir returns the directory for runtime state such as log files.
func StateDir() string {
	return baseDir("state", "XDG_STATE_HOME", ".local", "state")
}

// LogFile returns the default log file used when the file sink is enabled
// without a path.
func LogFile() string {
	state := StateDir()
	if state == "" {
		return ""
	}
	return filepath.Join(state, "logs", appName+".log")
}
