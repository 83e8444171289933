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
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	l "github.com/hyprload/hyprload/pkg/logger"
)

// LoadHyprloadManifest reads and validates the hyprload.toml manifest at the root of sourcePath
func LoadHyprloadManifest(sourcePath string) (*HyprloadManifest, error) {
	manifestPath := filepath.Join(sourcePath, ManifestFileName)

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, newConfigError("source '%s' does not have a %s manifest", sourcePath, ManifestFileName)
	}

	document := map[string]interface{}{}
	if err := toml.Unmarshal(data, &document); err != nil {
		return nil, newConfigError("failed to parse source manifest '%s': %v", manifestPath, err)
	}

	return ParseHyprloadManifest(document)
}

// GetManifest loads the source tree's manifest and selects the entry declared for name
func GetManifest(sourcePath, name string) (*Manifest, error) {
	hyprloadManifest, err := LoadHyprloadManifest(sourcePath)
	if err != nil {
		return nil, err
	}

	l.Log().Debugf("Loaded manifest at '%s' declaring %d plugin(s)", sourcePath, len(hyprloadManifest.Plugins))

	for _, manifest := range hyprloadManifest.Plugins {
		if manifest.Name == name {
			manifest := manifest
			return &manifest, nil
		}
	}

	return nil, newConfigError("source '%s' does not have a manifest entry for %s", sourcePath, name)
}
