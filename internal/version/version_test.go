package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuildInfo(t *testing.T, version, commit string) {
	t.Helper()
	oldVersion, oldCommit := Version, GitCommit
	Version, GitCommit = version, commit
	t.Cleanup(func() {
		Version, GitCommit = oldVersion, oldCommit
	})
}

func TestGetVersion(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		commit   string
		expected string
		full     string
	}{
		{name: "defaults", version: "dev", commit: "unknown", expected: "dev", full: "dev"},
		{name: "empty version", version: "", commit: "", expected: "dev", full: "dev"},
		{name: "release", version: "v0.3.0", commit: "abc1234", expected: "v0.3.0", full: "v0.3.0-abc1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, tt.version, tt.commit)
			assert.Equal(t, tt.expected, GetVersion())
			assert.Equal(t, tt.full, GetFullVersion())
		})
	}
}

func TestGetInfo(t *testing.T) {
	withBuildInfo(t, "v1.2.3", "deadbeef")

	info := GetInfo()
	assert.Equal(t, "v1.2.3", info.Version)
	assert.Equal(t, "deadbeef", info.GitCommit)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Contains(t, info.String(), "dms-go v1.2.3 (commit deadbeef")
}
