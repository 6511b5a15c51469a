// Package version holds build information injected with -ldflags.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is set via -ldflags "-X github.com/ironsheep/color-tools-mcp/internal/version.Version=x.y.z".
	Version = "dev"
	// Commit is the git commit hash of the build.
	Commit = "unknown"
	// BuildTime is the build timestamp in RFC3339 form.
	BuildTime = "unknown"
)

// Info is the structured form of the build information.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns the build information.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line human readable version.
func String() string {
	info := GetInfo()
	if Commit != "unknown" && BuildTime != "unknown" {
		commit := info.Commit
		if len(commit) > 8 {
			commit = commit[:8]
		}
		return fmt.Sprintf("color-tools-mcp %s (commit %s, built %s, %s, %s)",
			info.Version, commit, info.BuildTime, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("color-tools-mcp %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
}
