// Package version holds build metadata injected via ldflags.
package version

var (
	Version = "0.3.1"
	Commit  = "unknown"
	Date    = "unknown"
)

// Long renders the full version string shown by the root --version flag.
func Long() string {
	return Version + " (commit " + Commit + ", built " + Date + ")"
}
