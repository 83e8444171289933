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
package update

import (
	"github.com/spf13/cobra"

	"github.com/hyprload/hyprload/pkg/config"
	l "github.com/hyprload/hyprload/pkg/logger"
	"github.com/hyprload/hyprload/pkg/util"
)

// NewCmdUpdate returns a new cobra command
func NewCmdUpdate() *cobra.Command {

	// create new cobra command
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update and rebuild all configured plugins",
		Long: `Update and rebuild all configured plugins

Refreshes every configured plugin source that reports itself out of date,
rebuilds it and reinstalls the produced binary. Local sources are always
treated as changed and get rebuilt every time. Plugins whose source isn't
present yet are fetched and installed instead.`,
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
				if !requirement.Source.IsSourceAvailable() {
					if err := requirement.Source.InstallSource(); err != nil {
						l.Log().Errorf("Failed to fetch source for plugin %s: %v", requirement.Name, err)
						continue
					}
					if err := requirement.Source.Install(requirement.Name); err != nil {
						l.Log().Errorf("Failed to install plugin %s: %v", requirement.Name, err)
						continue
					}
					l.Log().Infof("Installed plugin %s", requirement.Name)
					continue
				}

				if requirement.Source.IsUpToDate() {
					l.Log().Debugf("Plugin %s is up to date, skipping", requirement.Name)
					continue
				}

				if err := requirement.Source.Update(requirement.Name); err != nil {
					l.Log().Errorf("Failed to update plugin %s: %v", requirement.Name, err)
					continue
				}

				l.Log().Infof("Updated plugin %s", requirement.Name)
			}
		},
	}

	// done
	return cmd
}
