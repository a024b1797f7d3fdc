// Package version provides build information for dms-go binaries
package version

import (
	"fmt"
	"runtime"
)

// These variables are set via ldflags during build time
var (
	// Version is the semantic version of dms-go
	Version = "dev"

	// GitCommit is the git commit SHA
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built
	BuildDate = "unknown"

	// GoVersion is the Go version used to build
	GoVersion = runtime.Version()
)

// GetVersion returns the version string
func GetVersion() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

// GetFullVersion returns the version with the commit appended when known
func GetFullVersion() string {
	v := GetVersion()
	if GitCommit != "unknown" && GitCommit != "" {
		v += "-" + GitCommit
	}
	return v
}

// Info contains all version information
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`
}

// String formats the information on one line
func (i Info) String() string {
	return fmt.Sprintf("dms-go %s (commit %s, built %s, %s %s)",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}

// GetInfo returns all version information
func GetInfo() Info {
	return Info{
		Version:   GetVersion(),
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
