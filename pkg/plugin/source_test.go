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
package plugin

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGitSourceURLNormalization(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		expectedURL string
	}{
		{
			name:        "bare owner/repo",
			url:         "duckonaut/split-monitor-workspaces",
			expectedURL: "https://github.com/duckonaut/split-monitor-workspaces.git",
		},
		{
			name:        "https url passes through",
			url:         "https://gitlab.com/owner/repo",
			expectedURL: "https://gitlab.com/owner/repo",
		},
		{
			name:        "ssh url passes through",
			url:         "git@github.com:owner/repo.git",
			expectedURL: "git@github.com:owner/repo.git",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			source := NewGitSource("/plugins", test.url, "main")

			assert.Equal(t, test.expectedURL, source.URL)
		})
	}
}

func TestNewGitSourceDerivedPath(t *testing.T) {
	source := NewGitSource("/plugins", "owner/repo", "main")

	// the checkout dir is the final path segment of the normalized URL
	assert.Equal(t, "/plugins/src/repo.git", source.SourcePath)

	source = NewGitSource("/plugins", "https://github.com/owner/repo", "main")
	assert.Equal(t, "/plugins/src/repo", source.SourcePath)
}

func TestSourceEquivalence(t *testing.T) {
	git := NewGitSource("/plugins", "owner/repo", "main")
	gitSame := NewGitSource("/plugins", "owner/repo", "main")
	gitOtherBranch := NewGitSource("/plugins", "owner/repo", "dev")
	gitOtherURL := NewGitSource("/plugins", "owner/other", "main")

	local := NewLocalSource("/plugins/src/repo.git")
	localSame := NewLocalSource("/plugins/src/repo.git")
	localOther := NewLocalSource("/somewhere/else")

	assert.True(t, git.Equivalent(gitSame))
	assert.False(t, git.Equivalent(gitOtherBranch))
	assert.False(t, git.Equivalent(gitOtherURL))

	assert.True(t, local.Equivalent(localSame))
	assert.False(t, local.Equivalent(localOther))

	// cross-variant comparisons are never equal, even with matching paths
	assert.False(t, git.Equivalent(local))
	assert.False(t, local.Equivalent(git))
}

func TestGitSourceIsSourceAvailable(t *testing.T) {
	pluginsRoot := t.TempDir()
	source := NewGitSource(pluginsRoot, "owner/repo", "main")

	assert.False(t, source.IsSourceAvailable())

	require.NoError(t, os.MkdirAll(path.Join(source.SourcePath, ".git"), 0o755))
	assert.True(t, source.IsSourceAvailable())
}

func TestLocalSourceIsSourceAvailable(t *testing.T) {
	sourcePath := t.TempDir()

	assert.True(t, NewLocalSource(sourcePath).IsSourceAvailable())
	assert.False(t, NewLocalSource(path.Join(sourcePath, "missing")).IsSourceAvailable())
}

func TestLocalSourceIsNeverUpToDate(t *testing.T) {
	sources := []*LocalSource{
		NewLocalSource(t.TempDir()),
		NewLocalSource("/does/not/exist"),
		NewLocalSource(""),
	}

	for _, source := range sources {
		for i := 0; i < 3; i++ {
			assert.False(t, source.IsUpToDate())
		}
	}
}

func TestLocalSourceInstallSourceIsNoop(t *testing.T) {
	assert.NoError(t, NewLocalSource("/does/not/exist").InstallSource())
}

func TestLocalSourceInstallMissingPath(t *testing.T) {
	source := NewLocalSource("/does/not/exist")

	err := source.Install("ghost-plugin")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost-plugin")
	assert.True(t, IsKind(err, ErrorFilesystem), "expected a filesystem error, got: %v", err)
}
