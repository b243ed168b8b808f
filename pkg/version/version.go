package version

// Build metadata, set with -ldflags at release time.
var (
	// Version is the current version of the hchk binary.
	Version = "dev"

	// GitCommit is the git commit hash the binary was built from.
	GitCommit = "none"

	// BuildTime is the time when the binary was built.
	BuildTime = "unknown"
)
