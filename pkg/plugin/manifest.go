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

// ManifestFileName is the name of the manifest file that describes a source tree's plugins
const ManifestFileName = "hyprload.toml"

// DefaultPluginVersion is assumed when a plugin manifest doesn't declare a version
const DefaultPluginVersion = "0.0.0"

// DefaultPluginDescription is assumed when a plugin manifest doesn't declare a description
const DefaultPluginDescription = "No description provided"

// Manifest describes how a single plugin found in a source tree's hyprload.toml is built
type Manifest struct {
	Name        string
	Authors     []string
	Version     string
	Description string
	// Output is the path of the built binary, relative to the source root
	Output string
	// BuildSteps are shell commands run in order inside the source root
	BuildSteps []string
}

// HyprloadManifest is the full set of plugins declared by one source tree's hyprload.toml
type HyprloadManifest struct {
	Plugins []Manifest
}

// ParseManifest validates one plugin's entry of an already-parsed hyprload.toml.
// name is the top-level key the entry was found under.
func ParseManifest(name string, entry map[string]interface{}) (*Manifest, error) {
	manifest := &Manifest{
		Name:        name,
		Version:     DefaultPluginVersion,
		Description: DefaultPluginDescription,
		Output:      name + ".so",
	}

	switch authors := entry["authors"].(type) {
	case []interface{}:
		for _, author := range authors {
			authorName, ok := author.(string)
			if !ok {
				return nil, newConfigError("plugin '%s': author must be a string", name)
			}
			manifest.Authors = append(manifest.Authors, authorName)
		}
	default:
		if author, present := entry["author"]; present {
			authorName, ok := author.(string)
			if !ok {
				return nil, newConfigError("plugin '%s': author must be a string", name)
			}
			manifest.Authors = append(manifest.Authors, authorName)
		}
	}

	if version, ok := entry["version"].(string); ok {
		manifest.Version = version
	}

	if description, ok := entry["description"].(string); ok {
		manifest.Description = description
	}

	build, ok := entry["build"].(map[string]interface{})
	if !ok {
		return nil, newConfigError("plugin '%s' must have a build table", name)
	}

	if output, ok := build["output"].(string); ok {
		manifest.Output = output
	}

	steps, ok := build["steps"].([]interface{})
	if !ok || len(steps) == 0 {
		return nil, newConfigError("plugin '%s' must have build steps", name)
	}
	for _, step := range steps {
		command, ok := step.(string)
		if !ok {
			return nil, newConfigError("plugin '%s': build step must be a string", name)
		}
		manifest.BuildSteps = append(manifest.BuildSteps, command)
	}

	return manifest, nil
}

// ParseHyprloadManifest validates an already-parsed hyprload.toml document.
// Every top-level table is one plugin entry; non-table entries are ignored.
func ParseHyprloadManifest(document map[string]interface{}) (*HyprloadManifest, error) {
	hyprloadManifest := &HyprloadManifest{}

	for name, entry := range document {
		table, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}

		manifest, err := ParseManifest(name, table)
		if err != nil {
			return nil, err
		}

		hyprloadManifest.Plugins = append(hyprloadManifest.Plugins, *manifest)
	}

	return hyprloadManifest, nil
}
