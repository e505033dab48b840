package cmd

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadBuild(t *testing.T) {
	info := &debug.BuildInfo{
		GoVersion: "go1.25.6",
		Main:      debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	d := readBuild(info, true)
	assert.Equal(t, "mathworlds v0.3.0 (0123456789ab-dirty, 2026-10-01T12:00:00Z) go1.25.6", d.String())
}

func TestReadBuild_LdflagsWins(t *testing.T) {
	old := version
	version = "v1.0.0"
	t.Cleanup(func() { version = old })

	d := readBuild(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true)
	assert.Equal(t, "mathworlds v1.0.0", d.String())
}

func TestReadBuild_NoInfo(t *testing.T) {
	assert.Equal(t, "mathworlds (devel)", readBuild(nil, false).String())
}
