// Package version holds build metadata injected via -ldflags.
package version

import "fmt"

// Set at build time with -ldflags "-X github.com/eugenenazirov/pwrs/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns a one-line description of the build.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
