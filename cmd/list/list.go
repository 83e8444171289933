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
package list

import (
	"fmt"
	"os"
	"strings"

	tabwriter "github.com/liggitt/tabwriter"
	"github.com/spf13/cobra"

	"github.com/hyprload/hyprload/pkg/config"
	l "github.com/hyprload/hyprload/pkg/logger"
	"github.com/hyprload/hyprload/pkg/plugin"
	"github.com/hyprload/hyprload/pkg/util"
)

type pluginListFlags struct {
	noHeader bool
}

// NewCmdList returns a new cobra command
func NewCmdList() *cobra.Command {
	pluginListFlags := pluginListFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List configured plugins",
		Long:    "List configured plugins, their sources and whether they are currently installed",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			pluginsDir, err := util.GetPluginsDirOrCreate()
			if err != nil {
				l.Log().Fatalln(err)
			}

			PrintRequirements(config.Requirements(pluginsDir), pluginListFlags)
		},
	}

	// add flags
	cmd.Flags().BoolVar(&pluginListFlags.noHeader, "no-headers", false, "Disable headers")

	return cmd
}

// PrintRequirements prints one row per configured plugin requirement
func PrintRequirements(requirements []*plugin.Requirement, flags pluginListFlags) {
	headers := &[]string{}
	if !flags.noHeader {
		headers = &[]string{"NAME", "SOURCE", "AVAILABLE", "INSTALLED"}
	}

	tabwriter := tabwriter.NewWriter(os.Stdout, 6, 4, 3, ' ', tabwriter.RememberWidths)
	defer tabwriter.Flush()

	if _, err := fmt.Fprintf(tabwriter, "%s\n", strings.Join(*headers, "\t")); err != nil {
		l.Log().Fatalln("Failed to print headers")
	}

	for _, requirement := range requirements {
		installed := "no"
		if _, err := os.Stat(requirement.BinaryPath); err == nil {
			installed = "yes"
		}

		available := "no"
		if requirement.Source.IsSourceAvailable() {
			available = "yes"
		}

		fmt.Fprintf(tabwriter, "%s\t%s\t%s\t%s\n", requirement.Name, requirement.Source, available, installed)
	}
}
