package internal

// Build-time variables injected via ldflags:
//
//	-X github.com/bezirg/cardano-node/internal.Version={{.Version}}
//	-X github.com/bezirg/cardano-node/internal.GitCommit={{.FullCommit}}
//	-X github.com/bezirg/cardano-node/internal.BuildDate={{.Date}}
var (
	// Version is the semantic version of the harness.
	// Defaults to "0.1.0-dev" for local builds.
	Version = "0.1.0-dev"

	// GitCommit is the git commit hash of the build.
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built.
	BuildDate = "unknown"
)

// BuildInfo contains all build-time information.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
}

// GetBuildInfo returns the build information for the harness.
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
	}
}
