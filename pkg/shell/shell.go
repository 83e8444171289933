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
package shell

import (
	"fmt"
	"os/exec"

	l "github.com/hyprload/hyprload/pkg/logger"
)

// RunCommand runs commandLine through the host shell and blocks until it exits.
// It returns the command's exit code together with its combined stdout/stderr.
// If the shell could not be spawned at all, the exit code is -1 and the output
// holds a diagnostic message instead of command output.
//
// The command line is executed verbatim. Callers assembling it from manifest
// content are trusting the manifest author.
func RunCommand(commandLine string) (int, string) {
	l.Log().Tracef("Running command '%s'", commandLine)

	cmd := exec.Command("sh", "-c", commandLine)

	output, err := cmd.CombinedOutput()
	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			return exitError.ExitCode(), string(output)
		}
		return -1, fmt.Sprintf("failed to execute command: %v", err)
	}

	return 0, string(output)
}
