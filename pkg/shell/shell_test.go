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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunCommandSuccess(t *testing.T) {
	exitCode, output := RunCommand("echo hello")

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "hello\n", output)
}

func TestRunCommandExitCode(t *testing.T) {
	exitCode, _ := RunCommand("exit 3")

	assert.Equal(t, 3, exitCode)
}

func TestRunCommandCapturesStderr(t *testing.T) {
	exitCode, output := RunCommand("echo oops >&2; false")

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, output, "oops")
}

func TestRunCommandChainsStopAtFirstFailure(t *testing.T) {
	exitCode, output := RunCommand("echo first && false && echo second")

	assert.NotEqual(t, 0, exitCode)
	assert.Contains(t, output, "first")
	assert.NotContains(t, output, "second")
}
