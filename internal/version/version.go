// Package version holds build information stamped in by the linker.
package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String formats the build information for the version command.
func String() string {
	return fmt.Sprintf("ptree %s (commit %s, built %s)", Version, CommitHash, BuildDate)
}
