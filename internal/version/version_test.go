package version

import (
	"runtime/debug"
	"testing"
)

func TestString(t *testing.T) {
	stamped := func(settings ...debug.BuildSetting) func() (*debug.BuildInfo, bool) {
		return func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{Settings: settings}, true
		}
	}
	noInfo := func() (*debug.BuildInfo, bool) { return nil, false }

	tests := []struct {
		name      string
		version   string
		commit    string
		buildTime string
		buildInfo func() (*debug.BuildInfo, bool)
		want      string
	}{
		{
			name:      "ldflags",
			version:   "v0.3.0",
			commit:    "0123456789abcdef",
			buildTime: "2024-03-01T09:30:00Z",
			buildInfo: noInfo,
			want:      "v0.3.0 (commit: 0123456, built: 2024-03-01T09:30:00Z)",
		},
		{
			name:      "ldflags win over vcs",
			version:   "v0.3.0",
			commit:    "abc",
			buildTime: "today",
			buildInfo: stamped(debug.BuildSetting{Key: "vcs.revision", Value: "fedcba9876543210"}),
			want:      "v0.3.0 (commit: abc, built: today)",
		},
		{
			name:      "vcs fallback",
			version:   "dev",
			commit:    "unknown",
			buildTime: "unknown",
			buildInfo: stamped(
				debug.BuildSetting{Key: "vcs.revision", Value: "fedcba9876543210"},
				debug.BuildSetting{Key: "vcs.time", Value: "2024-02-01T00:00:00Z"},
				debug.BuildSetting{Key: "vcs.modified", Value: "true"},
			),
			want: "dev (commit: fedcba9-dirty, built: 2024-02-01T00:00:00Z)",
		},
		{
			name:      "nothing recorded",
			version:   "dev",
			commit:    "unknown",
			buildTime: "unknown",
			buildInfo: noInfo,
			want:      "dev (commit: unknown, built: unknown)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, c, b, r := Version, Commit, BuildTime, readBuildInfo
			t.Cleanup(func() { Version, Commit, BuildTime, readBuildInfo = v, c, b, r })

			Version, Commit, BuildTime, readBuildInfo = tt.version, tt.commit, tt.buildTime, tt.buildInfo
			if got := String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
