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
	"path"
	"strings"

	"github.com/hyprload/hyprload/pkg/util"
)

// Requirement is one user-declared plugin dependency: where to get it,
// what to call it and where its installed binary is expected to land.
type Requirement struct {
	Name   string
	Source Source
	// BinaryPath is the expected installed binary, fixed at construction
	BinaryPath string
}

// NewRequirement parses one entry of the user's plugin list into a Requirement.
// A plain string is shorthand for a git source. A table names exactly one
// source kind through its "git" or "local" key ("git" wins if both are given);
// an optional "branch" applies to git sources and an optional "name" overrides
// the display name otherwise derived from the tail of the source identifier.
func NewRequirement(entry interface{}, pluginsRoot string) (*Requirement, error) {
	requirement := &Requirement{}

	var source string

	switch plugin := entry.(type) {
	case string:
		source = plugin
		requirement.Source = NewGitSource(pluginsRoot, source, DefaultBranch)
	case map[string]interface{}:
		if git, ok := plugin["git"].(string); ok {
			source = git

			branch := DefaultBranch
			if b, ok := plugin["branch"].(string); ok {
				branch = b
			}

			requirement.Source = NewGitSource(pluginsRoot, source, branch)
		} else if local, ok := plugin["local"].(string); ok {
			source = local
			requirement.Source = NewLocalSource(source)
		} else {
			return nil, newConfigError("plugin must have a source")
		}

		if name, ok := plugin["name"].(string); ok {
			requirement.Name = name
		}
	default:
		return nil, newConfigError("plugin entry must be a string or a table")
	}

	if requirement.Name == "" {
		requirement.Name = source[strings.LastIndex(source, "/")+1:]
	}

	requirement.BinaryPath = path.Join(pluginsRoot, util.BinariesDirName, requirement.Name+".so")

	return requirement, nil
}
