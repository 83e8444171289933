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
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	l "github.com/hyprload/hyprload/pkg/logger"
	"github.com/hyprload/hyprload/pkg/shell"
	"github.com/hyprload/hyprload/pkg/util"
)

// DefaultBranch is tracked when a git requirement doesn't name one
const DefaultBranch = "main"

// Source is a place a plugin's buildable source tree comes from
type Source interface {
	// IsSourceAvailable reports whether the source tree is present on disk. No network.
	IsSourceAvailable() bool
	// IsUpToDate reports whether the source tree needs no update. Errors degrade to false.
	IsUpToDate() bool
	// InstallSource fetches the source tree onto disk
	InstallSource() error
	// Install builds the available source tree and copies the produced binary
	// into the shared binaries directory
	Install(name string) error
	// Update refreshes the source tree, then installs
	Update(name string) error
	// Build runs the source tree's declared build steps
	Build(name string) error
	// Equivalent reports whether other identifies the same source.
	// Sources of different kinds are never equivalent.
	Equivalent(other Source) bool
}

// GitSource is a plugin source tracked in a remote git repository
type GitSource struct {
	URL        string
	Branch     string
	SourcePath string
}

// NewGitSource resolves url into a GitSource checked out under pluginsRoot.
// Bare 'owner/repo' identifiers are expanded to an HTTPS GitHub URL; https://
// and git@ URLs pass through unchanged.
func NewGitSource(pluginsRoot, url, branch string) *GitSource {
	if !strings.HasPrefix(url, "https://") && !strings.HasPrefix(url, "git@") {
		url = fmt.Sprintf("https://github.com/%s.git", url)
	}

	return &GitSource{
		URL:        url,
		Branch:     branch,
		SourcePath: path.Join(pluginsRoot, util.SourcesDirName, url[strings.LastIndex(url, "/")+1:]),
	}
}

// IsSourceAvailable reports whether the derived checkout path holds a git checkout
func (s *GitSource) IsSourceAvailable() bool {
	_, err := os.Stat(path.Join(s.SourcePath, ".git"))
	return err == nil
}

// IsUpToDate refreshes the remote-tracking refs and inspects the local status.
// A failed refresh means "needs update" rather than an error.
func (s *GitSource) IsUpToDate() bool {
	if exitCode, _ := shell.RunCommand(fmt.Sprintf("git -C %s remote update", s.SourcePath)); exitCode != 0 {
		return false
	}

	exitCode, output := shell.RunCommand(fmt.Sprintf("git -C %s status -uno", s.SourcePath))

	return exitCode != 0 && !strings.Contains(output, "ahead")
}

// InstallSource clones the tracked branch, shallowly, into the derived checkout path.
// A failed clone may leave a partial checkout behind; it is not cleaned up.
func (s *GitSource) InstallSource() error {
	l.Log().Infof("Cloning %s (branch %s)...", s.URL, s.Branch)

	command := fmt.Sprintf("git clone %s %s --branch %s --depth 1", s.URL, s.SourcePath, s.Branch)

	if exitCode, _ := shell.RunCommand(command); exitCode != 0 {
		return newProcessError("failed to clone plugin source")
	}

	return nil
}

// Install builds the checkout and installs the produced binary. If the source
// hasn't been cloned yet it only clones: fetching and building stay separate
// phases, so the caller invokes Install again once the source is available.
func (s *GitSource) Install(name string) error {
	if !s.IsSourceAvailable() {
		return s.InstallSource()
	}

	return installBinary(s.SourcePath, name)
}

// Update pulls the tracked branch and reinstalls unconditionally
func (s *GitSource) Update(name string) error {
	if exitCode, _ := shell.RunCommand(fmt.Sprintf("git -C %s pull", s.SourcePath)); exitCode != 0 {
		return newProcessError("failed to update plugin source")
	}

	return s.Install(name)
}

// Build runs the checkout's declared build steps
func (s *GitSource) Build(name string) error {
	return BuildPlugin(s.SourcePath, name)
}

// Equivalent implements Source.Equivalent
func (s *GitSource) Equivalent(other Source) bool {
	otherGit, ok := other.(*GitSource)
	if !ok {
		return false
	}

	return s.URL == otherGit.URL && s.Branch == otherGit.Branch && s.SourcePath == otherGit.SourcePath
}

func (s *GitSource) String() string {
	return fmt.Sprintf("git %s@%s", s.URL, s.Branch)
}

// LocalSource is a plugin source living in a user-supplied directory, used in place
type LocalSource struct {
	SourcePath string
}

// NewLocalSource returns a LocalSource rooted at sourcePath
func NewLocalSource(sourcePath string) *LocalSource {
	return &LocalSource{SourcePath: sourcePath}
}

// IsSourceAvailable reports whether the source directory exists
func (s *LocalSource) IsSourceAvailable() bool {
	_, err := os.Stat(s.SourcePath)
	return err == nil
}

// IsUpToDate always reports false: local sources are not versioned,
// so there is no way to know whether they have changed.
func (s *LocalSource) IsUpToDate() bool {
	return false
}

// InstallSource is a no-op, there is nothing to fetch
func (s *LocalSource) InstallSource() error {
	return nil
}

// Install builds the local tree and installs the produced binary. Unlike a git
// source there is no remote to fetch, so a missing path is a hard error.
func (s *LocalSource) Install(name string) error {
	if !s.IsSourceAvailable() {
		return newFilesystemError("source for %s does not exist", name)
	}

	return installBinary(s.SourcePath, name)
}

// Update rebuilds and reinstalls; local sources are always treated as changed
func (s *LocalSource) Update(name string) error {
	return s.Install(name)
}

// Build runs the local tree's declared build steps
func (s *LocalSource) Build(name string) error {
	return BuildPlugin(s.SourcePath, name)
}

// Equivalent implements Source.Equivalent
func (s *LocalSource) Equivalent(other Source) bool {
	otherLocal, ok := other.(*LocalSource)
	if !ok {
		return false
	}

	return s.SourcePath == otherLocal.SourcePath
}

func (s *LocalSource) String() string {
	return fmt.Sprintf("local %s", s.SourcePath)
}

// installBinary builds the plugin at sourcePath, verifies the binary its manifest
// declares actually exists, and copies it into the shared binaries directory,
// replacing any previous artifact of the same name.
func installBinary(sourcePath, name string) error {
	if err := BuildPlugin(sourcePath, name); err != nil {
		return err
	}

	manifest, err := GetManifest(sourcePath, name)
	if err != nil {
		return err
	}

	outputBinary := filepath.Join(sourcePath, manifest.Output)
	if _, err := os.Stat(outputBinary); err != nil {
		return newFilesystemError("plugin binary '%s' does not exist", outputBinary)
	}

	binariesDir, err := util.GetPluginBinariesDirOrCreate()
	if err != nil {
		return newFilesystemError("failed to resolve plugin binaries directory: %v", err)
	}

	targetPath := filepath.Join(binariesDir, filepath.Base(outputBinary))

	if _, err := os.Stat(targetPath); err == nil {
		if err := os.Remove(targetPath); err != nil {
			return newFilesystemError("failed to remove previous binary '%s': %v", targetPath, err)
		}
	}

	if err := util.CopyFile(outputBinary, targetPath); err != nil {
		return newFilesystemError("failed to install plugin binary: %v", err)
	}

	l.Log().Debugf("Installed '%s' to '%s'", outputBinary, targetPath)

	return nil
}
