/*
Copyright © 2022-2023 The hyprload Author(s)

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package util

import (
	"os"
	"path"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPluginsDirOrCreate(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	pluginsDir, err := GetPluginsDirOrCreate()
	require.NoError(t, err)
	assert.Equal(t, path.Join(dataHome, DefaultDataDirName), pluginsDir)

	info, err := os.Stat(pluginsDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGetPluginSubdirsOrCreate(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	sourcesDir, err := GetPluginSourcesDirOrCreate()
	require.NoError(t, err)
	assert.Equal(t, path.Join(dataHome, DefaultDataDirName, SourcesDirName), sourcesDir)

	binariesDir, err := GetPluginBinariesDirOrCreate()
	require.NoError(t, err)
	assert.Equal(t, path.Join(dataHome, DefaultDataDirName, BinariesDirName), binariesDir)

	for _, dir := range []string{sourcesDir, binariesDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestGetHyprlandHeadersPath(t *testing.T) {
	viper.Reset()
	t.Setenv(HyprlandHeadersEnv, "")

	_, found := GetHyprlandHeadersPath()
	assert.False(t, found)

	t.Setenv(HyprlandHeadersEnv, "/from/env")
	headersPath, found := GetHyprlandHeadersPath()
	assert.True(t, found)
	assert.Equal(t, "/from/env", headersPath)

	// the config value wins over the environment variable
	viper.Set(HyprlandHeadersSetting, "/from/config")
	defer viper.Reset()

	headersPath, found = GetHyprlandHeadersPath()
	assert.True(t, found)
	assert.Equal(t, "/from/config", headersPath)
}

func TestCopyFileOverwrites(t *testing.T) {
	dir := t.TempDir()

	src := path.Join(dir, "src")
	dest := path.Join(dir, "dest")
	require.NoError(t, os.WriteFile(src, []byte("fresh"), 0o644))
	require.NoError(t, os.WriteFile(dest, []byte("stale artifact"), 0o644))

	require.NoError(t, CopyFile(src, dest))

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(content))
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()

	err := CopyFile(path.Join(dir, "missing"), path.Join(dir, "dest"))
	assert.Error(t, err)
}
