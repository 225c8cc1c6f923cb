// Package version exposes build-time version metadata.
// The variables are set via -ldflags at release build time.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version, set at build time
	Version = "dev"
	// Commit is the git commit SHA, set at build time
	Commit = "none"
	// BuildTime is the build timestamp, set at build time
	BuildTime = "unknown"
)

// Short returns just the version number
func Short() string {
	return Version
}

// Info returns the full version information
func Info() string {
	return fmt.Sprintf("memtalk %s\ncommit: %s\nbuilt: %s\ngo: %s",
		Version, Commit, BuildTime, runtime.Version())
}
