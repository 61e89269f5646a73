// Package version provides build-time version information.
//
// Variables are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/rickgao/poe-ninja-cli/internal/version.Version=0.1.0 \
//	                   -X github.com/rickgao/poe-ninja-cli/internal/version.Commit=$(git rev-parse --short HEAD) \
//	                   -X github.com/rickgao/poe-ninja-cli/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

// Product is the client name sent to poe.ninja.
const Product = "poe-ninja-cli"

// Build-time variables (set via ldflags)
var (
	// Version is the semantic version (e.g., "0.1.0")
	Version = "0.1.0"

	// Commit is the git commit hash (short form)
	Commit = "unknown"

	// BuildTime is the UTC build timestamp (ISO 8601)
	BuildTime = "unknown"
)

// String returns a formatted version string.
func String() string {
	return Version + " (" + Commit + ") built " + BuildTime
}

// UserAgent returns the identifying User-Agent header value, e.g. "poe-ninja-cli/0.1.0".
func UserAgent() string {
	return Product + "/" + Version
}
