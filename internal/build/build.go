// Package build holds the version information stamped into fg at link time, e.g.
//
//	go build -ldflags "-X go.trai.ch/framegraph/internal/build.Version=v0.3.0" ./cmd/fg
package build

var (
	// Version is the release version, "dev" for local builds.
	Version = "dev"
	// Commit is the git revision fg was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
