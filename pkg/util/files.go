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
	"fmt"
	"io"
	"os"
	"path"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultDataDirName is the directory under the user's data dir that holds all hyprload state
const DefaultDataDirName = "hyprload"

// DefaultConfigDirName is the directory under the user's config dir where hyprload.toml lives
const DefaultConfigDirName = "hypr"

// SourcesDirName is the subdirectory of the plugins dir holding git checkouts
const SourcesDirName = "src"

// BinariesDirName is the subdirectory of the plugins dir holding built plugin binaries
const BinariesDirName = "bin"

// HyprlandHeadersEnv is the environment variable communicating the Hyprland headers location
const HyprlandHeadersEnv = "HYPRLAND_HEADERS"

// HyprlandHeadersSetting is the config key that overrides HyprlandHeadersEnv
const HyprlandHeadersSetting = "hyprload.hyprland_headers"

// GetPluginsDirOrCreate returns the base path of the hyprload plugins directory or creates it if it doesn't exist yet.
// The plugins directory is $XDG_DATA_HOME/hyprload (Unix), falling back to ~/.local/share/hyprload.
func GetPluginsDirOrCreate() (string, error) {
	pluginsDir := os.Getenv("XDG_DATA_HOME")
	if len(pluginsDir) == 0 {
		// build the path
		homeDir, err := homedir.Dir()
		if err != nil {
			return "", fmt.Errorf("failed to get user's home directory: %w", err)
		}
		pluginsDir = path.Join(homeDir, ".local", "share")
	}
	pluginsDir = path.Join(pluginsDir, DefaultDataDirName)

	// create directories if necessary
	if err := createDirIfNotExists(pluginsDir); err != nil {
		return "", fmt.Errorf("failed to create plugins directory '%s': %w", pluginsDir, err)
	}

	return pluginsDir, nil
}

// GetPluginSourcesDirOrCreate returns the directory holding plugin source checkouts, creating it if needed
func GetPluginSourcesDirOrCreate() (string, error) {
	pluginsDir, err := GetPluginsDirOrCreate()
	if err != nil {
		return "", err
	}

	sourcesDir := path.Join(pluginsDir, SourcesDirName)
	if err := createDirIfNotExists(sourcesDir); err != nil {
		return "", fmt.Errorf("failed to create plugin sources directory '%s': %w", sourcesDir, err)
	}

	return sourcesDir, nil
}

// GetPluginBinariesDirOrCreate returns the directory built plugin binaries get installed to, creating it if needed
func GetPluginBinariesDirOrCreate() (string, error) {
	pluginsDir, err := GetPluginsDirOrCreate()
	if err != nil {
		return "", err
	}

	binariesDir := path.Join(pluginsDir, BinariesDirName)
	if err := createDirIfNotExists(binariesDir); err != nil {
		return "", fmt.Errorf("failed to create plugin binaries directory '%s': %w", binariesDir, err)
	}

	return binariesDir, nil
}

// GetHyprlandHeadersPath resolves the location of the installed Hyprland headers.
// The config value takes precedence over the environment variable.
// The second return value is false if neither is set.
func GetHyprlandHeadersPath() (string, bool) {
	if headersPath := viper.GetString(HyprlandHeadersSetting); headersPath != "" {
		return headersPath, true
	}
	if headersPath := os.Getenv(HyprlandHeadersEnv); headersPath != "" {
		return headersPath, true
	}
	return "", false
}

// createDirIfNotExists checks for the existence of a directory and creates it along with all required parents if not.
// It returns an error if the directory (or parents) couldn't be created and nil if it worked fine or if the path already exists.
func createDirIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModePerm)
	}
	return nil
}

// CopyFile copies the file at src to dest, overwriting dest if it already exists
func CopyFile(src, dest string) error {
	source, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open '%s': %w", src, err)
	}
	defer source.Close()

	target, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create '%s': %w", dest, err)
	}
	defer target.Close()

	if _, err := io.Copy(target, source); err != nil {
		return fmt.Errorf("failed to copy '%s' to '%s': %w", src, dest, err)
	}

	return nil
}
