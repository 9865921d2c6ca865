/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubBuildInfo(t *testing.T, info *debug.BuildInfo, ok bool) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, ok }
	t.Cleanup(func() { readBuildInfo = orig })
}

func TestGet(t *testing.T) {
	t.Run("ldflags version wins", func(t *testing.T) {
		orig := Version
		Version = "v1.2.3"
		t.Cleanup(func() { Version = orig })
		stubBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "v9.9.9"}}, true)

		assert.Equal(t, "v1.2.3", Get())
	})

	t.Run("module version", func(t *testing.T) {
		stubBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "v0.4.0"}}, true)
		assert.Equal(t, "v0.4.0", Get())
	})

	t.Run("vcs revision", func(t *testing.T) {
		stubBuildInfo(t, &debug.BuildInfo{
			Main: debug.Module{Version: "(devel)"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.modified", Value: "true"},
			},
		}, true)
		assert.Equal(t, "dev-0123456-dirty", Get())
	})

	t.Run("no build info", func(t *testing.T) {
		stubBuildInfo(t, nil, false)
		assert.Equal(t, "dev", Get())
	})
}

func TestInfo(t *testing.T) {
	stubBuildInfo(t, nil, false)
	info := Info()
	assert.Equal(t, "dev", info["version"])
	assert.Contains(t, info, "gitCommit")
	assert.Contains(t, info, "buildTime")
}
