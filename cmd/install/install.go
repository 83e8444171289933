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
package install

import (
	"github.com/spf13/cobra"

	"github.com/hyprload/hyprload/pkg/config"
	l "github.com/hyprload/hyprload/pkg/logger"
	"github.com/hyprload/hyprload/pkg/util"
)

// NewCmdInstall returns a new cobra command
func NewCmdInstall() *cobra.Command {

	// create new cobra command
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install all configured plugins",
		Long: `Install all configured plugins

Fetches every plugin declared in your hyprload.toml that isn't present yet,
builds it with the build steps its own manifest declares and installs the
produced binary into the shared plugin binaries directory.
A plugin that fails to install doesn't stop the others.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			pluginsDir, err := util.GetPluginsDirOrCreate()
			if err != nil {
				l.Log().Fatalln(err)
			}

			requirements := config.Requirements(pluginsDir)
			if len(requirements) == 0 {
				l.Log().Infoln("No plugins configured")
				return
			}

			for _, requirement := range requirements {
				// First phase: fetch the source if it isn't on disk yet.
				// Install only clones in that case, so it runs once more afterwards.
				if !requirement.Source.IsSourceAvailable() {
					if err := requirement.Source.InstallSource(); err != nil {
						l.Log().Errorf("Failed to fetch source for plugin %s: %v", requirement.Name, err)
						continue
					}
				}

				if err := requirement.Source.Install(requirement.Name); err != nil {
					l.Log().Errorf("Failed to install plugin %s: %v", requirement.Name, err)
					continue
				}

				l.Log().Infof("Installed plugin %s", requirement.Name)
			}
		},
	}

	// done
	return cmd
}
