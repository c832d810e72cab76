// Package version exposes build metadata for the stylet CLI.
package version

// Populated by the Go linker (LDFLAGS) at build time.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
