//go:build !windows

package roots

// Desktop Unix platforms have no preconfigured roots.
var platformProvider Provider = Unconfigured{}
