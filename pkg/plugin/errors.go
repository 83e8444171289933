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
	"errors"
	"fmt"
)

// ErrorKind classifies what went wrong during a plugin operation
type ErrorKind string

const (
	// ErrorConfig marks malformed manifests, missing required fields or an ambiguous/absent source kind
	ErrorConfig ErrorKind = "config"
	// ErrorEnvironment marks a broken host setup (e.g. missing Hyprland headers)
	ErrorEnvironment ErrorKind = "environment"
	// ErrorProcess marks a non-zero git or build exit
	ErrorProcess ErrorKind = "process"
	// ErrorFilesystem marks a missing or inaccessible file the operation depended on
	ErrorFilesystem ErrorKind = "filesystem"
)

// Error is the structured error returned by all fallible plugin operations
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// IsKind reports whether err (or an error it wraps) is a plugin Error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var pluginErr *Error
	if errors.As(err, &pluginErr) {
		return pluginErr.Kind == kind
	}
	return false
}

func newConfigError(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrorConfig, Message: fmt.Sprintf(format, args...)}
}

func newEnvironmentError(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrorEnvironment, Message: fmt.Sprintf(format, args...)}
}

func newProcessError(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrorProcess, Message: fmt.Sprintf(format, args...)}
}

func newFilesystemError(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrorFilesystem, Message: fmt.Sprintf(format, args...)}
}
