// Package version exposes build metadata stamped at link time via -ldflags.
package version

var (
	// Version is the semantic version of the build.
	Version = "dev"

	// Commit is the VCS revision of the build.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)
