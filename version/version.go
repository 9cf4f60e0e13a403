// Package version holds build metadata injected at link time via -ldflags.
package version

import "runtime"

var (
	// GitRelease is the release tag or "dev" for local builds.
	GitRelease = "dev"

	// GitCommit is the commit hash the binary was built from.
	GitCommit = "unknown"

	// GitCommitDate is the commit date of GitCommit.
	GitCommitDate = "unknown"

	// GoInfo is the Go toolchain the binary was built with.
	GoInfo = runtime.Version()
)
