// Package buildinfo provides build metadata for shaengine binaries.
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Injected at build time with -ldflags "-X shaengine/internal/buildinfo.Version=...".
var (
	Version string
	Commit  string
	Date    string
)

// Info contains normalized build metadata.
type Info struct {
	Version string
	Commit  string
	Date    string
	Go      string
	OS      string
	Arch    string
}

// Get returns build metadata. Missing ldflags values fall back to the VCS
// stamp embedded by the Go toolchain, then to "dev" and "unknown".
func Get() Info {
	info := Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.Commit == "":
				info.Commit = s.Value
			case s.Key == "vcs.time" && info.Date == "":
				info.Date = s.Value
			}
		}
	}
	info.Version = orDefault(info.Version, "dev")
	info.Commit = orDefault(info.Commit, "unknown")
	info.Date = orDefault(info.Date, "unknown")
	return info
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// String formats build metadata for CLI output.
func (i Info) String() string {
	return fmt.Sprintf("shaengine %s\ncommit: %s\nbuilt:  %s\ngo:     %s\nos/arch:%s/%s", i.Version, i.Commit, i.Date, i.Go, i.OS, i.Arch)
}
