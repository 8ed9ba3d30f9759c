package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Equal(t, "1.0.0", info.RecipeFormat)
}

func TestInfo_Full(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "dev build",
			info: Info{Version: "dev", Commit: "unknown", BuildDate: "unknown", GoVersion: "go1.25.5", Platform: "linux/amd64", RecipeFormat: "1.0.0"},
			want: "dev go1.25.5 linux/amd64 recipe 1.0.0",
		},
		{
			name: "release build",
			info: Info{Version: "v0.3.0", Commit: "abc1234", BuildDate: "2026-01-02", GoVersion: "go1.25.5", Platform: "darwin/arm64", RecipeFormat: "1.0.0"},
			want: "v0.3.0 (abc1234) built 2026-01-02 go1.25.5 darwin/arm64 recipe 1.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Full())
			assert.Equal(t, tt.info.Version, tt.info.String())
		})
	}
}
