package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "bare dev build",
			info: Info{Version: "dev"},
			want: "dev",
		},
		{
			name: "dev with commit",
			info: Info{Version: "dev", Commit: "abc1234def5678"},
			want: "dev+abc1234",
		},
		{
			name: "release",
			info: Info{Version: "v1.2.3", Commit: "abc1234def5678"},
			want: "v1.2.3+abc1234",
		},
		{
			name: "dirty tree",
			info: Info{Version: "v1.2.3", Commit: "abc1234def5678", Dirty: true},
			want: "v1.2.3+abc1234*",
		},
		{
			name: "short commit kept whole",
			info: Info{Version: "dev", Commit: "abc"},
			want: "dev+abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Short())
		})
	}
}

func TestDetailed(t *testing.T) {
	info := Info{
		Version:   "v1.2.3",
		Commit:    "abc1234def5678",
		GoVersion: "go1.24.4",
		Platform:  "linux/amd64",
	}

	out := info.Detailed()
	assert.True(t, strings.HasPrefix(out, "drill v1.2.3+abc1234\n"))
	assert.Contains(t, out, "commit:   abc1234def5678")
	assert.Contains(t, out, "go:       go1.24.4")
	assert.Contains(t, out, "platform: linux/amd64")
	assert.NotContains(t, out, "dirty")

	info.Dirty = true
	assert.Contains(t, info.Detailed(), "dirty:    true")
}

func TestDetailedOmitsUnknownCommit(t *testing.T) {
	info := Info{Version: "dev", GoVersion: "go1.24.4", Platform: "linux/amd64"}
	assert.NotContains(t, info.Detailed(), "commit:")
}

func TestResolvePopulatesToolchainFields(t *testing.T) {
	info := Resolve()
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func TestIsRelease(t *testing.T) {
	assert.False(t, Info{Version: "dev"}.IsRelease())
	assert.False(t, Info{Version: "(devel)"}.IsRelease())
	assert.True(t, Info{Version: "v1.0.0"}.IsRelease())
}
