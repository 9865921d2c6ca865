/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package check

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/layoutspec/cmd/flags"
	"bennypowers.dev/layoutspec/config"
	"bennypowers.dev/layoutspec/fs"
	"bennypowers.dev/layoutspec/internal/logger"
	"bennypowers.dev/layoutspec/internal/mapfs"
	"bennypowers.dev/layoutspec/reader"
	"bennypowers.dev/layoutspec/testutil"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newEnv(filesystem fs.FileSystem) *flags.Env {
	return &flags.Env{
		FS:     filesystem,
		Root:   "/project",
		Config: config.LoadOrDefault(filesystem, "/project"),
		Reader: reader.New(reader.Options{}),
	}
}

func TestRun_ConfigFiles(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "config/yaml", "/project")

	var out, errOut bytes.Buffer
	err := Run(newEnv(mfs), nil, false, &out, &errOut)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Checking /project/specs/login.spec...")
	assert.Contains(t, out.String(), "3 specs in 3 files, 0 invalid")
	assert.Empty(t, errOut.String())
}

func TestRun_ReportsInvalidLines(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/home.spec", "width: 10px\non top bottom: menu 10px top\nimage: stretch\n", 0644)

	var out, errOut bytes.Buffer
	err := Run(newEnv(mfs), []string{"/project/home.spec"}, true, &out, &errOut)
	require.ErrorIs(t, err, ErrInvalidSpecs)

	assert.Empty(t, out.String())
	assert.Equal(t,
		"/project/home.spec:2: Cannot use theses sides: top bottom\n"+
			"/project/home.spec:3: There are no images defined\n",
		errOut.String())
}

func TestRun_UnreadableFile(t *testing.T) {
	var out, errOut bytes.Buffer
	err := Run(newEnv(mapfs.New()), []string{"/project/missing.spec"}, false, &out, &errOut)
	require.ErrorIs(t, err, ErrInvalidSpecs)
	assert.Contains(t, errOut.String(), "missing.spec")
	assert.Contains(t, out.String(), "0 specs in 0 files, 0 invalid")
}

func TestRun_NoFiles(t *testing.T) {
	var out, errOut bytes.Buffer
	err := Run(newEnv(mapfs.New()), nil, false, &out, &errOut)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no files specified")
}
