// Package buildinfo holds the build metadata of the diff-folders binary.
// The linker injects values into cmd/diff-folders; main forwards them here.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

const shortCommitLen = 12

// Info is the build metadata of the running binary.
type Info struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

var current = defaults()

func defaults() Info {
	return Info{Version: "dev", Commit: "none", Date: "unknown", BuiltBy: "unknown"}
}

// Set stores the build metadata received from linker-injected variables.
// Empty fields keep their default.
func Set(info Info) {
	d := defaults()
	if info.Version == "" {
		info.Version = d.Version
	}
	if info.Commit == "" {
		info.Commit = d.Commit
	}
	if info.Date == "" {
		info.Date = d.Date
	}
	if info.BuiltBy == "" {
		info.BuiltBy = d.BuiltBy
	}
	current = info
}

// Get returns the stored build metadata.
func Get() Info { return current }

// String formats the metadata for --version.
func (i Info) String() string {
	commit := i.Commit
	if len(commit) > shortCommitLen {
		commit = commit[:shortCommitLen]
	}
	return fmt.Sprintf("%s (commit %s, built %s by %s)", i.Version, commit, i.Date, i.BuiltBy)
}

// Enrich fills missing metadata from runtime/debug.ReadBuildInfo(): the VCS
// revision when no commit was injected and the Go version when no builder was.
func Enrich() {
	if current.Commit != "none" && current.BuiltBy != "unknown" {
		return
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if current.Commit == "none" {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				current.Commit = setting.Value
			}
		}
	}

	if current.BuiltBy == "unknown" {
		current.BuiltBy = info.GoVersion
	}
}
