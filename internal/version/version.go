// Package version reports build information for the codeverifier binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/codeverifier/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/codeverifier/internal/version.Commit=abc123"
//
// Unset values are filled from the module's VCS stamp when available.
var (
	Version = ""
	Commit  = ""
)

const shortCommitLen = 7

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			fillFromBuildInfo(info)
		}
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fillFromBuildInfo copies the module version and VCS revision into any
// variable that ldflags left empty.
func fillFromBuildInfo(info *debug.BuildInfo) {
	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if Commit != "" || revision == "" {
		return
	}
	if len(revision) > shortCommitLen {
		revision = revision[:shortCommitLen]
	}
	Commit = revision
	if dirty {
		Commit += "-dirty"
	}
}

// Full returns the version with its commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Details returns the version line printed by the version command.
func Details() string {
	return fmt.Sprintf("codeverifier %s %s/%s %s", Full(), runtime.GOOS, runtime.GOARCH, runtime.Version())
}
