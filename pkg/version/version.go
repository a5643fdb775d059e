package version

import "fmt"

// These variables are injected at build time via ldflags, e.g.
//
//	-X frameworks/topup/pkg/version.Version=v1.2.3
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// ComponentName identifies this binary in logs and metrics.
const ComponentName = "topup"

// Info represents version information for the batch
type Info struct {
	Component string `json:"component"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
}

// GetInfo returns version information as a struct
func GetInfo() Info {
	return Info{
		Component: ComponentName,
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
	}
}

// GetShortCommit returns the short git commit hash (first 7 characters)
func GetShortCommit() string {
	if len(GitCommit) >= 7 {
		return GitCommit[:7]
	}
	return GitCommit
}

func (i Info) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", i.Component, i.Version, GetShortCommit(), i.BuildDate)
}
