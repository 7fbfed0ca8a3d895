// Package version exposes build metadata, set through -ldflags at release
// time and recovered from debug build info otherwise.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at build time:
//
//	-ldflags "-X github.com/dkoosis/drill/internal/version.Version=v1.2.3
//	          -X github.com/dkoosis/drill/internal/version.Commit=<sha>"
var (
	Version = "dev"
	Commit  = ""
)

// Info is the resolved build metadata.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Dirty     bool   `json:"dirty,omitempty"`
}

// Resolve merges the ldflags values with whatever the Go toolchain
// embedded. ldflags win; VCS stamps fill the gaps on plain go-build
// binaries.
func Resolve() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = setting.Value
			}
		case "vcs.modified":
			info.Dirty = setting.Value == "true"
		}
	}

	return info
}

// Short renders a one-line version tag: "v1.2.3+abc1234", with a
// trailing "*" when the tree was dirty at build time.
func (i Info) Short() string {
	out := i.Version
	if c := i.shortCommit(); c != "" {
		out += "+" + c
	}
	if i.Dirty {
		out += "*"
	}
	return out
}

// Detailed renders the full metadata block shown by version --detailed.
func (i Info) Detailed() string {
	var b strings.Builder
	fmt.Fprintf(&b, "drill %s\n", i.Short())
	if i.Commit != "" {
		fmt.Fprintf(&b, "  commit:   %s\n", i.Commit)
	}
	fmt.Fprintf(&b, "  go:       %s\n", i.GoVersion)
	fmt.Fprintf(&b, "  platform: %s", i.Platform)
	if i.Dirty {
		b.WriteString("\n  dirty:    true")
	}
	return b.String()
}

// IsRelease reports whether the binary carries a real version tag.
func (i Info) IsRelease() bool {
	return i.Version != "dev" && i.Version != "(devel)"
}

func (i Info) shortCommit() string {
	if len(i.Commit) >= 7 {
		return i.Commit[:7]
	}
	return i.Commit
}
