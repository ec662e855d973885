// Package buildinfo holds build-time variables injected via ldflags.
package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/go-ports/rampage/internal/buildinfo.Version=...".
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Summary formats the version line printed by `rampage --version`.
func Summary() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
