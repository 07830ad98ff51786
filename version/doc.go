// Package version provides version information and build metadata for djutil.
//
// Values injected at link time win:
//
//	-ldflags "-X github.com/dendrascience/dendra-utils/version.Version=v1.0.0 -X github.com/dendrascience/dendra-utils/version.Commit=abc123 -X github.com/dendrascience/dendra-utils/version.Date=2023-01-01T00:00:00Z"
//
// Otherwise the module version and vcs settings recorded by debug.ReadBuildInfo are
// used, falling back to "development" and "unknown".
package version
