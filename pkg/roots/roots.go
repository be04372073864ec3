// Package roots exposes the optional application root and developer write
// storage locations. Each platform supplies its Provider at build time.
package roots

import "github.com/grovetools/selfpath/pkg/pathbuf"

// Provider answers the root-path queries for one platform.
type Provider interface {
	// DefaultAppRootPath returns the preconfigured application root, if any.
	DefaultAppRootPath() pathbuf.Optional
	// DevWriteStoragePath returns the developer write storage location, if any.
	DevWriteStoragePath() pathbuf.Optional
}

// Unconfigured is a Provider with no roots configured.
type Unconfigured struct{}

// DefaultAppRootPath always returns the absent value.
func (Unconfigured) DefaultAppRootPath() pathbuf.Optional {
	return pathbuf.None()
}

// DevWriteStoragePath always returns the absent value.
func (Unconfigured) DevWriteStoragePath() pathbuf.Optional {
	return pathbuf.None()
}

// Platform returns the Provider for the platform this binary was built for.
func Platform() Provider {
	return platformProvider
}

// DefaultAppRootPath queries the platform Provider.
func DefaultAppRootPath() pathbuf.Optional {
	return platformProvider.DefaultAppRootPath()
}

// DevWriteStoragePath queries the platform Provider.
func DevWriteStoragePath() pathbuf.Optional {
	return platformProvider.DevWriteStoragePath()
}
