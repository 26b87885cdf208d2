// Package version reports which build of piste is running.
//
// Release builds stamp the variables with -ldflags, for example:
//
//	go build -ldflags "-X github.com/example/piste/internal/version.Version=v0.3.0 \
//	  -X github.com/example/piste/internal/version.Commit=$(git rev-parse HEAD)" ./cmd/piste
//
// Unstamped builds fall back to the VCS revision recorded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are set at build time via ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// String returns the version line printed by `piste --version`.
func String() string {
	commit, built := shortCommit(Commit), BuildTime
	if Commit == "unknown" || BuildTime == "unknown" {
		vcsCommit, vcsTime, modified := vcsStamp()
		if Commit == "unknown" && vcsCommit != "" {
			commit = shortCommit(vcsCommit)
			if modified {
				commit += "-dirty"
			}
		}
		if BuildTime == "unknown" && vcsTime != "" {
			built = vcsTime
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

func vcsStamp() (revision, at string, modified bool) {
	info, ok := readBuildInfo()
	if !ok {
		return "", "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			at = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	return revision, at, modified
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
