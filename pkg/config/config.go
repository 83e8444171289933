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
package config

import (
	"os"
	"path"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	l "github.com/hyprload/hyprload/pkg/logger"
	"github.com/hyprload/hyprload/pkg/plugin"
	"github.com/hyprload/hyprload/pkg/util"
)

// CfgFile is an explicit config file location, set from the command line
var CfgFile string

// InitConfig reads the user-level hyprload.toml into viper.
// A missing config file is not an error: it just means no plugins are configured.
func InitConfig() error {
	viper.SetConfigType("toml")

	if CfgFile != "" {
		viper.SetConfigFile(CfgFile)
	} else {
		configDir := os.Getenv("XDG_CONFIG_HOME")
		if len(configDir) == 0 {
			homeDir, err := homedir.Dir()
			if err != nil {
				return errors.Wrap(err, "failed to get user's home directory")
			}
			configDir = path.Join(homeDir, ".config")
		}

		viper.AddConfigPath(path.Join(configDir, util.DefaultConfigDirName))
		viper.SetConfigName("hyprload")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			l.Log().Debugln("No hyprload.toml found, continuing without configured plugins")
			return nil
		}
		return errors.Wrap(err, "failed to read config file")
	}

	l.Log().Debugf("Using config file %s", viper.ConfigFileUsed())

	return nil
}

// Requirements parses the configured plugin list into requirements rooted at pluginsRoot.
// A malformed entry only loses that entry: it is logged and the rest proceed.
func Requirements(pluginsRoot string) []*plugin.Requirement {
	entries, ok := viper.Get("plugins").([]interface{})
	if !ok {
		l.Log().Debugln("No plugins configured")
		return nil
	}

	requirements := []*plugin.Requirement{}

	for i, entry := range entries {
		requirement, err := plugin.NewRequirement(entry, pluginsRoot)
		if err != nil {
			l.Log().Errorf("Skipping plugin entry %d: %v", i+1, err)
			continue
		}

		requirements = append(requirements, requirement)
	}

	return requirements
}
