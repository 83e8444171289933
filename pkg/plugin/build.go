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
	"strings"

	l "github.com/hyprload/hyprload/pkg/logger"
	"github.com/hyprload/hyprload/pkg/shell"
	"github.com/hyprload/hyprload/pkg/util"
)

// SetupDocsURL is where users are pointed when their Hyprland headers cannot be found
const SetupDocsURL = "https://github.com/hyprload/hyprload#setup"

// BuildPlugin runs the build steps declared by the plugin's own manifest at sourcePath.
// The Hyprland headers location is handed to the steps through the HYPRLAND_HEADERS
// environment variable so the steps stay ignorant of the host layout. The steps are
// chained with '&&', so the first failing step aborts the build.
//
// The assembled command line is manifest content executed verbatim through the host
// shell: whoever opted into the plugin is trusting its manifest author.
func BuildPlugin(sourcePath, name string) error {
	headersPath, found := util.GetHyprlandHeadersPath()
	if !found {
		return newEnvironmentError("could not find hyprland headers, refer to %s", SetupDocsURL)
	}

	manifest, err := GetManifest(sourcePath, name)
	if err != nil {
		return err
	}

	command := fmt.Sprintf("export %s=%s && cd %s && %s && cd -",
		util.HyprlandHeadersEnv, headersPath, sourcePath, strings.Join(manifest.BuildSteps, " && "))

	l.Log().Infof("Building plugin %s...", name)

	exitCode, output := shell.RunCommand(command)
	if exitCode != 0 {
		return newProcessError("failed to build plugin %s: %s", name, output)
	}

	return nil
}
