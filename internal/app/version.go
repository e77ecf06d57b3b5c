package app

import "fmt"

// Version, Commit and BuildTime are set via ldflags:
//
//	go build -ldflags "-X github.com/heartmarshall/tenantlookup/internal/app.Version=1.0.0" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build metadata for startup logs and /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
