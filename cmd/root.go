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
package cmd

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hyprload/hyprload/cmd/install"
	"github.com/hyprload/hyprload/cmd/list"
	"github.com/hyprload/hyprload/cmd/update"
	"github.com/hyprload/hyprload/pkg/config"
	l "github.com/hyprload/hyprload/pkg/logger"
	"github.com/hyprload/hyprload/version"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/writer"
)

// RootFlags describes a struct that holds flags that can be set on root level of the command
type RootFlags struct {
	debugLogging       bool
	traceLogging       bool
	timestampedLogging bool
	version            bool
}

var flags = RootFlags{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hyprload",
	Short: "Fetch, build and install Hyprland plugins",
	Long: `hyprload is a plugin manager for Hyprland.
It reads the plugins declared in your hyprload.toml, fetches their sources
(from git or a local path), runs each plugin's own build steps and installs
the produced binaries where Hyprland can load them.`,
	Run: func(cmd *cobra.Command, args []string) {
		if flags.version {
			printVersion()
		} else {
			if err := cmd.Usage(); err != nil {
				l.Log().Fatalln(err)
			}
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		l.Log().Fatalln(err)
	}
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {

	rootCmd.PersistentFlags().BoolVar(&flags.debugLogging, "verbose", false, "Enable verbose output (debug logging)")
	rootCmd.PersistentFlags().BoolVar(&flags.traceLogging, "trace", false, "Enable super verbose output (trace logging)")
	rootCmd.PersistentFlags().BoolVar(&flags.timestampedLogging, "timestamps", false, "Enable Log timestamps")
	rootCmd.PersistentFlags().StringVarP(&config.CfgFile, "config", "c", "", "Path to the hyprload.toml config file")

	// add local flags
	rootCmd.Flags().BoolVar(&flags.version, "version", false, "Show hyprload version")

	// add subcommands
	rootCmd.AddCommand(NewCmdCompletion())
	rootCmd.AddCommand(install.NewCmdInstall())
	rootCmd.AddCommand(update.NewCmdUpdate())
	rootCmd.AddCommand(list.NewCmdList())

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show hyprload version",
		Long:  "Show hyprload version",
		Run: func(cmd *cobra.Command, args []string) {
			printVersion()
		},
	})

	// Init
	cobra.OnInitialize(initLogging, initConfig)
}

// initLogging initializes the logger
func initLogging() {
	if flags.traceLogging {
		l.Log().SetLevel(log.TraceLevel)
	} else if flags.debugLogging {
		l.Log().SetLevel(log.DebugLevel)
	} else {
		switch logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL")); logLevel {
		case "TRACE":
			l.Log().SetLevel(log.TraceLevel)
		case "DEBUG":
			l.Log().SetLevel(log.DebugLevel)
		case "WARN":
			l.Log().SetLevel(log.WarnLevel)
		case "ERROR":
			l.Log().SetLevel(log.ErrorLevel)
		default:
			l.Log().SetLevel(log.InfoLevel)
		}
	}
	l.Log().SetOutput(ioutil.Discard)
	l.Log().AddHook(&writer.Hook{
		Writer: os.Stderr,
		LogLevels: []log.Level{
			log.PanicLevel,
			log.FatalLevel,
			log.ErrorLevel,
			log.WarnLevel,
		},
	})
	l.Log().AddHook(&writer.Hook{
		Writer: os.Stdout,
		LogLevels: []log.Level{
			log.InfoLevel,
			log.DebugLevel,
			log.TraceLevel,
		},
	})

	formatter := &log.TextFormatter{
		ForceColors: true,
	}

	if flags.timestampedLogging || os.Getenv("LOG_TIMESTAMPS") != "" {
		formatter.FullTimestamp = true
	}

	l.Log().SetFormatter(formatter)

}

func initConfig() {
	if err := config.InitConfig(); err != nil {
		l.Log().Fatalln(err)
	}
}

func printVersion() {
	fmt.Printf("hyprload version %s\n", version.GetVersion())
}

func generateFishCompletion(writer io.Writer) error {
	return rootCmd.GenFishCompletion(writer, true)
}

// Completion
var completionFunctions = map[string]func(io.Writer) error{
	"bash": rootCmd.GenBashCompletion,
	"zsh": func(writer io.Writer) error {
		if err := rootCmd.GenZshCompletion(writer); err != nil {
			return err
		}

		fmt.Fprintf(writer, "\n# source completion file\ncompdef _hyprload hyprload\n")

		return nil
	},
	"psh":        rootCmd.GenPowerShellCompletion,
	"powershell": rootCmd.GenPowerShellCompletion,
	"fish":       generateFishCompletion,
}

// NewCmdCompletion creates a new completion command
func NewCmdCompletion() *cobra.Command {
	// create new cobra command
	cmd := &cobra.Command{
		Use:   "completion SHELL",
		Short: "Generate completion scripts for [bash, zsh, fish, powershell | psh]",
		Long:  `Generate completion scripts for [bash, zsh, fish, powershell | psh]`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if completionFunc, ok := completionFunctions[args[0]]; ok {
				if err := completionFunc(os.Stdout); err != nil {
					l.Log().Fatalf("Failed to generate completion script for shell '%s'", args[0])
				}
				return
			}
			l.Log().Fatalf("Shell '%s' not supported for completion", args[0])
		},
	}
	return cmd
}
